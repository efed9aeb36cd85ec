package storage

import (
	"net/url"
	"regexp"
)

type Scheme string

const (
	FileScheme  Scheme = "file"
	StdioScheme Scheme = "stdio"
	HTTPScheme  Scheme = "http"
	HTTPSScheme Scheme = "https"
	S3Scheme    Scheme = "s3"
)

// StdinPath is the operand that names standard input.
const StdinPath = "-"

type URI url.URL

// uriRegexp determines whether a path is treated as a URI.  A path must
// begin with scheme:// to be read as one; anything else, including a
// relative path with an embedded colon, is a file.
var uriRegexp = regexp.MustCompile("^[a-zA-Z][a-zA-Z0-9+-.]*://")

// ParseURI parses an input operand.  "-" names standard input, a path
// with a scheme:// prefix is parsed with url.Parse, and anything else is
// a local file resolved with filepath.Abs.
func ParseURI(path string) (*URI, error) {
	if path == StdinPath {
		return &URI{Scheme: string(StdioScheme), Path: "/stdin"}, nil
	}
	if uriRegexp.MatchString(path) {
		u, err := url.Parse(path)
		if err != nil {
			return nil, err
		}
		return (*URI)(u), nil
	}
	return parseBarePath(path)
}

func (u URI) String() string {
	return (*url.URL)(&u).String()
}

func (u *URI) HasScheme(s Scheme) bool {
	return Scheme(u.Scheme) == s
}

func (u *URI) IsStdin() bool {
	return u.HasScheme(StdioScheme) && u.Path == "/stdin"
}
