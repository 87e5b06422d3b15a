package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/colorname"
)

func main() {
	log.SetPrefix("colorname: ")
	log.SetFlags(0)

	args := os.Args[1:]
	switch {
	case len(args) == 1 && strings.HasPrefix(args[0], "#"):
		name, exact, err := colorname.HexToName(args[0])
		if err != nil {
			log.Fatal(err)
		}
		printName(strings.ToUpper(args[0]), name, exact)

	case len(args) == 3:
		var rgb [3]float64
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				log.Fatalf("invalid channel %q: %v", a, err)
			}
			rgb[i] = v
		}
		b := colorname.Denormalize(rgb)
		name, exact := colorname.Lookup(b)
		printName(fmt.Sprintf("#%02X%02X%02X", b[0], b[1], b[2]), name, exact)

	default:
		fmt.Println("Usage: colorname <#RRGGBB> | colorname <r> <g> <b>  (channels 0-1)")
		os.Exit(1)
	}
}

func printName(hex, name string, exact bool) {
	if exact {
		fmt.Printf("%s %s\n", hex, name)
		return
	}
	fmt.Printf("%s ~%s\n", hex, name)
}
