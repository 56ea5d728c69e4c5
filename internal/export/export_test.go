package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/field"
	"github.com/san-kum/fieldmap/internal/viz"
)

func dipoleMap(size int) (*coulomb.Solver, *field.Map) {
	s := coulomb.NewSolver()
	m := field.Compute(s, coulomb.DefaultCharges(2), field.Spec{Size: size, Extent: 5})
	return s, m
}

func TestWriteCSV(t *testing.T) {
	_, m := dipoleMap(3)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, m); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(records) != 1+3*3 {
		t.Errorf("expected 10 records, got %d", len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "x,y,ex,ey,v" {
		t.Errorf("expected header 'x,y,ex,ey,v', got '%s'", header)
	}

	if records[1][0] != "-5.000000" || records[1][1] != "-5.000000" {
		t.Errorf("expected first row at (-5, -5), got (%s, %s)", records[1][0], records[1][1])
	}
}

func TestExportCSVFile(t *testing.T) {
	_, m := dipoleMap(4)

	path := filepath.Join(t.TempDir(), "field.csv")
	if err := ExportCSV(path, m); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(records) != 1+4*4 {
		t.Errorf("expected 17 records, got %d", len(records))
	}
}

func TestExportJSON(t *testing.T) {
	s, m := dipoleMap(10)

	path := filepath.Join(t.TempDir(), "field.json")
	if err := ExportJSON(path, s, m); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var doc ExportData
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if doc.GridSize != 10 {
		t.Errorf("expected grid size 10, got %d", doc.GridSize)
	}

	if len(doc.V) != 10 || len(doc.V[0]) != 10 {
		t.Errorf("expected 10x10 potential plane, got %dx%d", len(doc.V), len(doc.V[0]))
	}

	if len(doc.Charges) != 2 {
		t.Errorf("expected 2 charges, got %d", len(doc.Charges))
	}

	if doc.K != coulomb.K {
		t.Errorf("expected k %g, got %g", coulomb.K, doc.K)
	}

	if doc.Metrics["net_charge"] != 0 {
		t.Errorf("expected zero net charge for dipole, got %f", doc.Metrics["net_charge"])
	}

	if doc.Metrics["energy"] >= 0 {
		t.Errorf("expected negative dipole energy, got %f", doc.Metrics["energy"])
	}
}

func TestFieldToSVG(t *testing.T) {
	s, m := dipoleMap(20)
	sc := analysis.NewScale(m.V, analysis.DefaultQuantile, analysis.DefaultLevels)

	svg := FieldToSVG(s, m, sc, 100)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected xml declaration prefix")
	}

	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("expected closing svg tag")
	}

	if n := strings.Count(svg, "<rect"); n != 20*20 {
		t.Errorf("expected 400 heat cells, got %d", n)
	}

	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 charge markers, got %d", n)
	}

	if !strings.Contains(svg, `<path d="M`) {
		t.Error("expected streamline paths")
	}

	// +1 charge sits at (-2, 0): pixel (30, 50) on a 100px canvas
	if !strings.Contains(svg, `cx="30.0" cy="50.0"`) {
		t.Error("expected positive charge marker at pixel (30, 50)")
	}

	if !strings.Contains(svg, ">+1</text>") || !strings.Contains(svg, ">-1</text>") {
		t.Error("expected signed charge labels")
	}
}

func TestFieldToSVGNilMap(t *testing.T) {
	if svg := FieldToSVG(coulomb.NewSolver(), nil, analysis.Scale{}, 100); svg != "" {
		t.Errorf("expected empty string for nil map, got %d bytes", len(svg))
	}
}

func TestRenderImage(t *testing.T) {
	_, m := dipoleMap(10)
	sc := analysis.NewScale(m.V, analysis.DefaultQuantile, analysis.DefaultLevels)

	img := RenderImage(m, sc, 4)

	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Errorf("expected 40x40 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// +1 charge at (-2, 0) lands at pixel (12, 20)
	if got := img.RGBAAt(12, 20); got != viz.ChargeColor(1) {
		t.Errorf("expected positive charge dot at (12, 20), got %v", got)
	}

	// -1 charge at (2, 0) lands at pixel (28, 20)
	if got := img.RGBAAt(28, 20); got != viz.ChargeColor(-1) {
		t.Errorf("expected negative charge dot at (28, 20), got %v", got)
	}
}

func TestExportPNGFile(t *testing.T) {
	_, m := dipoleMap(10)
	sc := analysis.NewScale(m.V, analysis.DefaultQuantile, analysis.DefaultLevels)

	path := filepath.Join(t.TempDir(), "field.png")
	if err := ExportPNG(path, m, sc, 2); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if img.Bounds().Dx() != 20 {
		t.Errorf("expected 20px wide image, got %d", img.Bounds().Dx())
	}
}

func TestProfileChart(t *testing.T) {
	_, m := dipoleMap(50)

	line, err := analysis.Profile(m, analysis.QuantityV, analysis.AxisRow, 0)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ProfileChart(&buf, line); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("expected png magic bytes")
	}
}

func TestExportProfileChartFile(t *testing.T) {
	_, m := dipoleMap(50)

	line, err := analysis.Profile(m, analysis.QuantityEx, analysis.AxisCol, -2)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "profile.png")
	if err := ExportProfileChart(path, line); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("profile.png not created")
	}
}
