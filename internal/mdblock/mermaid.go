package mdblock

import (
	"fmt"
	"strings"
)

// Direction is the layout direction of a flowchart.
type Direction string

const (
	DirectionTD Direction = "TD"
	DirectionLR Direction = "LR"
)

// Shape is the outline drawn around a node.
type Shape string

const (
	ShapeRect    Shape = "rect"
	ShapeRound   Shape = "round"
	ShapeDiamond Shape = "diamond"
	ShapeCircle  Shape = "circle"
)

// Node is a flowchart vertex.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape Shape  `json:"shape"`
}

// Link is a directed flowchart edge with an optional label.
type Link struct {
	ID     string `json:"id,omitempty"`
	Source string `json:"sourceId"`
	Target string `json:"targetId"`
	Label  string `json:"label,omitempty"`
}

// Graph is the structured description behind a generated mermaid diagram.
type Graph struct {
	Nodes     []Node    `json:"nodes"`
	Links     []Link    `json:"links"`
	Direction Direction `json:"direction"`
}

// Source renders g as mermaid flowchart text. Every node gets an explicit
// definition; links whose endpoints are not both defined are skipped.
func (g Graph) Source() string {
	var buff strings.Builder

	dir := g.Direction
	if dir != DirectionLR {
		dir = DirectionTD
	}

	fmt.Fprintf(&buff, "graph %s;\n", dir)

	known := make(map[string]bool, len(g.Nodes))

	for _, node := range g.Nodes {
		known[node.ID] = true

		fmt.Fprintf(&buff, "    %s%s;\n", node.ID, node.shaped())
	}

	buff.WriteString("\n")

	for _, link := range g.Links {
		if !known[link.Source] || !known[link.Target] {
			continue
		}

		if len(link.Label) != 0 {
			fmt.Fprintf(&buff, "    %s-->|%s|%s;\n", link.Source, link.Label, link.Target)
		} else {
			fmt.Fprintf(&buff, "    %s-->%s;\n", link.Source, link.Target)
		}
	}

	return buff.String()
}

func (n Node) shaped() string {
	label := strings.ReplaceAll(n.Label, `"`, "'")

	switch n.Shape {
	case ShapeRound:
		return "(" + label + ")"
	case ShapeDiamond:
		return "{" + label + "}"
	case ShapeCircle:
		return "((" + label + "))"
	case ShapeRect:
		fallthrough
	default:
		return "[" + label + "]"
	}
}

// RemoveNode returns a copy of g without the node and every link touching it.
func (g Graph) RemoveNode(id string) Graph {
	res := Graph{Direction: g.Direction}

	for _, node := range g.Nodes {
		if node.ID != id {
			res.Nodes = append(res.Nodes, node)
		}
	}

	for _, link := range g.Links {
		if link.Source != id && link.Target != id {
			res.Links = append(res.Links, link)
		}
	}

	return res
}

func (g Graph) clone() Graph {
	return Graph{
		Nodes:     append([]Node(nil), g.Nodes...),
		Links:     append([]Link(nil), g.Links...),
		Direction: g.Direction,
	}
}
