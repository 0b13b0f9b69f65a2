package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/appengine-ltd/forest-stand/internal/forest"
)

// WriteStandJSON writes the stand as indented JSON with nested trunk/leaves
// objects per tree.
func WriteStandJSON(w io.Writer, stand forest.Stand) error {
	data, err := json.MarshalIndent(stand, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// StandToJSONFile writes the stand to a JSON file at path.
func StandToJSONFile(stand forest.Stand, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteStandJSON(f, stand); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
