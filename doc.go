// File: lixenwraith/confparse/doc.go

// Package confparse loads a line-oriented configuration format into a tree of
// headers, keys and values, and merges registered defaults into the result.
//
// Format:
//
//	# comment lines and blank lines are ignored
//	server:
//	host 127.0.0.1
//	port 8080 9090
//
// A line ending in ':' opens a header. Every other line is a key name followed
// by its values, separated by single spaces. A key line before the first
// header is an error. There is no quoting, escaping or nesting.
//
// Quick Start:
//
//	cfg, err := confparse.NewBuilder(confparse.File("app.conf")).
//	    WithDefault("server", "host", "localhost").
//	    WithDefault("server", "port", "8080").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := cfg.Key("server", "port")
//	p, err := port.NextInt()
//
// Default Precedence:
//
// Values from the source always win. A default header is added when the
// source lacks it, a default key when the header lacks it, and default values
// fill a key that was declared without values.
//
// Sources:
//
//	confparse.File("/etc/app.conf")
//	confparse.URI("file:///etc/app.conf")
//	confparse.URL("https://example.com/app.conf")
//	confparse.Text("server:\nhost example.com\n")
//
// Thread Safety:
// A built Config may be read concurrently. Key.Next advances a cursor stored
// in the Key and must be serialized by callers that share a Key.
package confparse
