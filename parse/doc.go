// Package parse parses gd format text into ir trees.
//
// # Usage
//
//	f, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	for _, tag := range f.Tags {
//	    ...
//	}
//
//	// Parse a single value
//	v, err := parse.ParseValue([]byte(`Vector2(1, 2)`))
//
//	// Label diagnostics with a source name
//	f, err := parse.Parse(data, parse.ParseLabel("player.tscn"))
//
// Parsing is all-or-nothing: on any syntax error the whole parse fails
// with a single position-tagged error and no partial tree is returned.
//
// # Related Packages
//
//   - github.com/scenekit/gd-format/ir - parsed representation
//   - github.com/scenekit/gd-format/token - tokenization
package parse
