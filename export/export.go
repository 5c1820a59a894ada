// Package export writes sampled paths and tube meshes in formats which other
// tools can read.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cloudy-native/lucid/math3d"
	"github.com/cloudy-native/lucid/mesh"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatOBJ  Format = "obj"
	FormatTube Format = "tube"
)

var Formats = []Format{FormatJSON, FormatCSV, FormatOBJ, FormatTube}

// ParseFormat returns the named format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", s, Formats)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	default:
		return "model/obj"
	}
}

// WritePoints writes the points in the given format. FormatTube builds a tube
// with the given options first.
func WritePoints(w io.Writer, f Format, points []math3d.Vector3, o mesh.TubeOptions) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, points)
	case FormatCSV:
		return WriteCSV(w, points)
	case FormatOBJ:
		return WritePolylineOBJ(w, points)
	case FormatTube:
		tube, err := mesh.BuildTube(points, o)
		if err != nil {
			return err
		}
		return WriteTubeOBJ(w, tube)
	}

	return fmt.Errorf("unknown format %q", f)
}

// WriteJSON writes the points as an array of [x, y, z] arrays.
func WriteJSON(w io.Writer, points []math3d.Vector3) error {
	arr := make([][3]float64, len(points))
	for i, p := range points {
		arr[i] = p.Array()
	}

	return json.NewEncoder(w).Encode(arr)
}

// WriteCSV writes the points with an x,y,z header.
func WriteCSV(w io.Writer, points []math3d.Vector3) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}

	for _, p := range points {
		if err := cw.Write([]string{ff(p.X), ff(p.Y), ff(p.Z)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePolylineOBJ writes the points as a single Wavefront OBJ line element.
func WritePolylineOBJ(w io.Writer, points []math3d.Vector3) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# lucid path, %d points\n", len(points))
	fmt.Fprintln(bw, "o path")

	for _, p := range points {
		fmt.Fprintf(bw, "v %s %s %s\n", ff(p.X), ff(p.Y), ff(p.Z))
	}

	if len(points) > 1 {
		bw.WriteString("l")
		for i := range points {
			fmt.Fprintf(bw, " %d", i+1)
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// WriteTubeOBJ writes a tube as a Wavefront OBJ triangle mesh with normals.
func WriteTubeOBJ(w io.Writer, t *mesh.Tube) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# lucid tube, %d vertices, %d triangles\n", len(t.Vertices), t.Triangles())
	fmt.Fprintln(bw, "o tube")

	for _, v := range t.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", ff(v[0]), ff(v[1]), ff(v[2]))
	}

	for _, n := range t.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ff(n[0]), ff(n[1]), ff(n[2]))
	}

	// OBJ indices start at one, and each vertex has the normal of the same
	// index.
	for i := 0; i+2 < len(t.Indices); i += 3 {
		a, b, c := t.Indices[i]+1, t.Indices[i+1]+1, t.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}

func ff(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}
