// SPDX-License-Identifier: MIT

// Command bitgossip builds a graph from a text edge-list and answers
// next-node / path / path-exists queries from the command line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gaissmai/bitgossip"
)

func main() {
	log.SetFlags(0)

	var (
		file  = flag.String("f", "", "edge-list file, one \"a b\" pair per line")
		nodes = flag.Int("n", 0, "node count")
		curr  = flag.Int("curr", -1, "current node for a query")
		dest  = flag.Int("dest", -1, "destination node for a query")
		mode  = flag.String("mode", "path", "query mode: next-node | path | path-exists")
	)
	flag.Parse()

	if *file == "" || *nodes <= 0 {
		log.Fatal("usage: bitgossip -f edges.txt -n nodes [-curr N -dest N -mode path]")
	}

	edges, err := readEdges(*file)
	if err != nil {
		log.Fatalf("reading %s: %v", *file, err)
	}

	builder := bitgossip.NewBuilder[uint32](*nodes)
	for _, e := range edges {
		builder.Connect(e[0], e[1])
	}
	graph := builder.Build()

	log.Printf("built graph: %d nodes, %d edges", graph.NodesLen(), graph.EdgesLen())

	if *curr < 0 || *dest < 0 {
		return
	}
	c, d := uint32(*curr), uint32(*dest)

	switch *mode {
	case "next-node":
		n, ok := graph.NextNode(c, d)
		if !ok {
			fmt.Println("none")
			return
		}
		fmt.Println(n)
	case "path":
		nodes := []uint32{c}
		for n := range graph.PathTo(c, d) {
			nodes = append(nodes, n)
		}
		fmt.Println(joinUint32(nodes))
	case "path-exists":
		fmt.Println(graph.PathExists(c, d))
	default:
		log.Fatalf("unknown -mode %q", *mode)
	}
}

func readEdges(path string) ([][2]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var edges [][2]uint32
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed edge line: %q", line)
		}
		a, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, err
		}
		b, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, err
		}
		edges = append(edges, [2]uint32{uint32(a), uint32(b)})
	}
	return edges, sc.Err()
}

func joinUint32(ns []uint32) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return strings.Join(parts, " ")
}
