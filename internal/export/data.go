package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/rootviz/internal/scene"
)

// FrameJSON is the serialized form of a frame.
type FrameJSON struct {
	OutDim int          `json:"out_dim"`
	Angles []float64    `json:"angles"`
	Points [][]float64  `json:"points"`
	Edges  []scene.Edge `json:"edges"`
}

// WriteJSON encodes a frame as indented JSON.
func WriteJSON(w io.Writer, f *scene.Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FrameJSON{
		OutDim: f.OutDim,
		Angles: f.Angles,
		Points: f.Points,
		Edges:  f.Edges,
	})
}

// WriteCSV writes one row per projected point: index then coordinates.
func WriteCSV(w io.Writer, f *scene.Frame) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"index"}
	for d := 0; d < f.OutDim; d++ {
		header = append(header, fmt.Sprintf("c%d", d))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, p := range f.Points {
		row := make([]string, 0, f.OutDim+1)
		row = append(row, strconv.Itoa(i))
		for _, v := range p {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteEdgesCSV writes one row per adjacency edge.
func WriteEdgesCSV(w io.Writer, f *scene.Frame) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"a", "b"}); err != nil {
		return err
	}
	for _, e := range f.Edges {
		if err := cw.Write([]string{strconv.Itoa(e.A), strconv.Itoa(e.B)}); err != nil {
			return err
		}
	}
	return nil
}
