package axis

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

type jsonNode struct {
	Position [3]float64 `json:"position"`
	Radius   *float64   `json:"radius,omitempty"`
}

type jsonEdge struct {
	V1        int       `json:"v1"`
	V2        int       `json:"v2"`
	Thickness []float64 `json:"thickness,omitempty"`
	Deleted   bool      `json:"deleted,omitempty"`
}

type jsonSkeleton struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

// ReadSkeleton decodes a skeleton from JSON.
//
// Nodes are objects with a "position" array and an
// optional "radius". Edges refer to nodes by their index
// in the "nodes" array, and may carry a "thickness"
// profile and a "deleted" flag.
func ReadSkeleton(r io.Reader) (*Skeleton, error) {
	var obj jsonSkeleton
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, errors.Wrap(err, "read skeleton")
	}
	s := &Skeleton{}
	for _, n := range obj.Nodes {
		node := s.AddNode(model3d.Coord3D{X: n.Position[0], Y: n.Position[1], Z: n.Position[2]})
		if n.Radius != nil {
			node.SetRadius(*n.Radius)
		}
	}
	for i, e := range obj.Edges {
		if e.V1 < 0 || e.V2 < 0 || e.V1 >= len(s.Nodes) || e.V2 >= len(s.Nodes) {
			return nil, errors.Errorf("read skeleton: edge %d refers to missing node", i)
		}
		edge := s.AddEdge(s.Nodes[e.V1], s.Nodes[e.V2])
		edge.Thickness = e.Thickness
		edge.Deleted = e.Deleted
	}
	return s, nil
}

// WriteSkeleton encodes a skeleton as JSON.
// Raw samples are not written.
func WriteSkeleton(w io.Writer, s *Skeleton) error {
	ids := map[*Node]int{}
	obj := jsonSkeleton{
		Nodes: make([]jsonNode, len(s.Nodes)),
		Edges: make([]jsonEdge, len(s.Edges)),
	}
	for i, n := range s.Nodes {
		ids[n] = i
		p := n.Position
		obj.Nodes[i].Position = [3]float64{p.X, p.Y, p.Z}
		if n.HasRadius {
			r := n.Radius
			obj.Nodes[i].Radius = &r
		}
	}
	for i, e := range s.Edges {
		v1, ok1 := ids[e.V1]
		v2, ok2 := ids[e.V2]
		if !ok1 || !ok2 {
			return errors.Errorf("write skeleton: edge %d refers to missing node", i)
		}
		obj.Edges[i] = jsonEdge{V1: v1, V2: v2, Thickness: e.Thickness, Deleted: e.Deleted}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(obj), "write skeleton")
}

// LoadSkeleton reads a skeleton from a JSON file.
func LoadSkeleton(path string) (*Skeleton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load skeleton")
	}
	defer f.Close()
	return ReadSkeleton(f)
}

// SaveSkeleton writes a skeleton to a JSON file.
func SaveSkeleton(path string, s *Skeleton) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save skeleton")
	}
	defer f.Close()
	return WriteSkeleton(f, s)
}
