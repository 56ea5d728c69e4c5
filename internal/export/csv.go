package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/fieldmap/internal/field"
)

// WriteCSV writes one row per grid node with columns x, y, ex, ey, v.
// Rows are emitted in row-major order, matching the layout of the map planes.
func WriteCSV(w io.Writer, m *field.Map) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "y", "ex", "ey", "v"}); err != nil {
		return err
	}

	for i := 0; i < m.Size; i++ {
		for j := 0; j < m.Size; j++ {
			row := []string{
				strconv.FormatFloat(m.X[i][j], 'f', 6, 64),
				strconv.FormatFloat(m.Y[i][j], 'f', 6, 64),
				strconv.FormatFloat(m.Ex[i][j], 'f', 6, 64),
				strconv.FormatFloat(m.Ey[i][j], 'f', 6, 64),
				strconv.FormatFloat(m.V[i][j], 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, m *field.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteCSV(f, m)
}
