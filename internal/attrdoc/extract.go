package attrdoc

import (
	"io"
	"log"

	"braces.dev/errtrace"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

// Record is the documentation for a single option.
type Record struct {
	Name  string
	Doc   DocComment
	Class Classification
}

// Extractor extracts option documentation from a parsed file.
type Extractor struct {
	// Log receives debug output. Defaults to discarding it.
	Log *log.Logger

	// Marker is the name of the binding holding the options record.
	// Defaults to DefaultMarker.
	Marker string

	// Classifier classifies field values.
	// The zero value is used if this is nil.
	Classifier *Classifier
}

// Extract returns a record for every field of the options record
// in source order.
//
// Extraction stops at the first problem.
// Errors for individual fields are reported as [*EntryError].
func (x *Extractor) Extract(tree *nixsyntax.Tree) ([]*Record, error) {
	logger := x.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	marker := x.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	classifier := x.Classifier
	if classifier == nil {
		classifier = new(Classifier)
	}

	target, err := Locate(tree, marker)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	start := target.Binding.Syntax().Range().Start
	logger.Printf("Found %q at %v", marker, tree.Position(start))

	var records []*Record
	for ent, err := range target.Entries() {
		if err != nil {
			return nil, errtrace.Wrap(err)
		}

		doc, err := Associate(ent.Decl)
		if err != nil {
			return nil, errtrace.Wrap(&EntryError{
				Name: ent.Name,
				Pos:  tree.Position(ent.Decl.Range().Start),
				Err:  err,
			})
		}

		class := classifier.Classify(ent.Value)
		logger.Printf("Entry %v: %T", ent.Name, class)
		records = append(records, &Record{
			Name:  ent.Name,
			Doc:   doc,
			Class: class,
		})
	}
	return records, nil
}
