package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/delaneyj/slotgraph/expr"
	"github.com/delaneyj/slotgraph/slot"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// graphFile is the on-disk description of a slot graph: struct type
// registrations, trees, initial values and links, applied in that
// order.
type graphFile struct {
	Structs []struct {
		Type   expr.Type       `yaml:"type"`
		Fields []slot.Property `yaml:"fields"`
	} `yaml:"structs"`
	Trees []struct {
		Name      string         `yaml:"name"`
		Direction slot.Direction `yaml:"direction"`
		Property  slot.Property  `yaml:"property"`
	} `yaml:"trees"`
	Values []struct {
		Path   string    `yaml:"path"`
		Floats []float32 `yaml:"floats,omitempty"`
		Int    *int32    `yaml:"int,omitempty"`
		Bool   *bool     `yaml:"bool,omitempty"`
	} `yaml:"values"`
	Links []struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"links"`
}

func main() {
	cmd := &cli.Command{
		Name:      "slotdump",
		Usage:     "Build a slot graph from a YAML description and dump its resolved state",
		ArgsUsage: "<graph.yaml>",
		Action:    dump,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func dump(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one graph file argument")
	}
	raw, err := os.ReadFile(cmd.Args().First())
	if err != nil {
		return err
	}
	var gf graphFile
	if err := yaml.Unmarshal(raw, &gf); err != nil {
		return fmt.Errorf("parsing graph file: %w", err)
	}

	for _, st := range gf.Structs {
		if err := slot.RegisterStruct(st.Type, st.Fields...); err != nil {
			return err
		}
	}

	g := slot.NewGraph()
	var names []string
	for _, t := range gf.Trees {
		if _, err := g.AddTree(t.Name, t.Property, t.Direction); err != nil {
			return err
		}
		names = append(names, t.Name)
	}

	for _, v := range gf.Values {
		s, ok := g.Find(v.Path)
		if !ok {
			return fmt.Errorf("no slot at path %q", v.Path)
		}
		switch {
		case v.Int != nil:
			err = s.SetInt(*v.Int)
		case v.Bool != nil:
			err = s.SetBool(*v.Bool)
		case len(v.Floats) > 0:
			err = s.SetFloats(v.Floats...)
		default:
			return fmt.Errorf("value for %q carries no payload", v.Path)
		}
		if err != nil {
			return err
		}
	}

	for _, l := range gf.Links {
		from, ok := g.Find(l.From)
		if !ok {
			return fmt.Errorf("no slot at path %q", l.From)
		}
		to, ok := g.Find(l.To)
		if !ok {
			return fmt.Errorf("no slot at path %q", l.To)
		}
		if !slot.Link(from, to) {
			return fmt.Errorf("cannot link %q to %q", l.From, l.To)
		}
	}

	log.Printf("built %d trees, %d links, %d dirty roots",
		len(gf.Trees), len(gf.Links), g.DirtyCount())

	sort.Strings(names)
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"path", "type", "dir", "in", "out", "links"})
	for _, name := range names {
		root, _ := g.Tree(name)
		root.Walk(func(s *slot.Slot) {
			tbl.Append([]string{
				s.Path(),
				string(s.Property().Type),
				s.Direction().String(),
				exprString(s.InExpression()),
				exprString(s.OutExpression()),
				linksString(s),
			})
		})
	}
	tbl.Render()
	return nil
}

func exprString(e expr.Expression) string {
	if e == nil {
		return "-"
	}
	return expr.Evaluate(e).String()
}

func linksString(s *slot.Slot) string {
	linked := s.LinkedSlots()
	if len(linked) == 0 {
		return "-"
	}
	paths := make([]string, len(linked))
	for i, l := range linked {
		paths[i] = l.Path()
	}
	return strings.Join(paths, ", ")
}
