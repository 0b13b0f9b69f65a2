// Package export serializes generated stands for external collaborators.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/appengine-ltd/forest-stand/internal/forest"
)

var csvHeader = []string{"tree_id", "type", "x", "y", "z", "radius", "nx", "ny", "nz"}

// WriteStandCSV writes the collaborator contract: a header, then per tree one
// trunk row (base point, zero normals) followed by one row per leaf. tree_id
// is the 0-based stand index. Trunk height is deliberately not serialized;
// the contract carries only the base point.
func WriteStandCSV(w io.Writer, stand forest.Stand) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for id, tree := range stand {
		trunk := tree.Trunk
		row := []string{
			strconv.Itoa(id), "trunk",
			formatFloat(trunk.Base.X), formatFloat(trunk.Base.Y), formatFloat(trunk.Base.Z),
			formatFloat(trunk.Radius),
			"0", "0", "0",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		for _, leaf := range tree.Leaves {
			row := []string{
				strconv.Itoa(id), "leaf",
				formatFloat(leaf.Center.X), formatFloat(leaf.Center.Y), formatFloat(leaf.Center.Z),
				formatFloat(leaf.Radius),
				formatFloat(leaf.Normal.X), formatFloat(leaf.Normal.Y), formatFloat(leaf.Normal.Z),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// StandToCSVFile writes the stand to a CSV file at path.
func StandToCSVFile(stand forest.Stand, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteStandCSV(f, stand); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
