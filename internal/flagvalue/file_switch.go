package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that may be passed as "-x" or "-x=path".
//
// Without a value, output goes to a fallback writer (usually stderr).
// With a value, output goes to a file at that path.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the path given to the flag,
// "-" if the flag was passed without a value,
// or an empty string if the flag wasn't passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the same value as Get.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
// "true" and "-" select the fallback writer,
// and "false" or an empty string turn the switch off.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = "-"
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag is on.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination selected by this flag:
//
//   - the flag is off: io.Discard
//   - the flag was passed without a value: fallback
//   - the flag was passed with a value: a new file at that path
//
// The caller must close the result when done.
// Closing io.Discard or the fallback does nothing.
func (fs *FileSwitch) Create(fallback io.Writer) (io.WriteCloser, error) {
	switch *fs {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{fallback}, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return f, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
