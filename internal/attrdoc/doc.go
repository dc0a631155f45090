// Package attrdoc extracts documentation for the options
// of a Nix configuration constructor.
//
// It expects files shaped like this:
//
//	{ lib, ... }:
//	let
//	  mkAttrs = attrs0: {
//	    # Name of the derivation.
//	    name = attrs0.name or null;
//	  };
//	in
//	...
//
// [Locate] finds the record returned by the marker binding (mkAttrs),
// [Target.Entries] walks its fields in source order,
// [Associate] recovers each field's comment,
// and [Classifier] describes the field's default value.
// [Extractor] ties these together into a list of [Record]s.
package attrdoc
