package stlexport

import (
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// WriteSTL encodes a mesh as a binary STL file.
func WriteSTL(w io.Writer, m *model3d.Mesh) error {
	return errors.Wrap(model3d.WriteSTL(w, m.TriangleSlice()), "write STL")
}

// SaveSTL saves a mesh to an STL file, grouping triangles
// by locality.
func SaveSTL(path string, m *model3d.Mesh) error {
	return errors.Wrap(m.SaveGroupedSTL(path), "save STL")
}
