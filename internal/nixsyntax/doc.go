// Package nixsyntax parses Nix source into a lossless concrete syntax tree.
//
// Every byte of the input, including whitespace and comments,
// is held by exactly one [Token] in the tree,
// so the text of the tree's root is always identical to the source.
// Tokens are grouped into [Node]s, and both implement [Element],
// which provides navigation to the parent and to neighboring siblings.
//
// Trivia (whitespace and comments) is attached to whichever node
// is being built when the parser looks past it.
// In practice this means that comments preceding a binding
// are siblings of that binding, not its children:
//
//	{
//	  # Port to listen on.
//	  port = 8080;
//	}
//
// Here the comment token and the KeyValue node for port
// are both children of the AttrSet node.
//
// Typed views over nodes are provided by [Cast].
package nixsyntax
