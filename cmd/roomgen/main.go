// roomgen validates the compiled-in room registry and exports it as a
// YAML template pack, for content review and for seeding external packs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/room"
)

func main() {
	out := flag.String("out", "", "Output YAML path (default: stdout)")
	validateOnly := flag.Bool("validate", false, "Validate the registry and exit")
	pack := flag.String("pack", "", "Validate an external template pack instead of the registry")
	flag.Parse()

	if *pack != "" {
		templates, err := room.LoadTemplatesYAML(*pack)
		if err != nil {
			log.Fatalf("Template pack invalid: %v", err)
		}
		fmt.Printf("Template pack OK: %d rooms\n", len(templates))
		return
	}

	if err := room.ValidateRegistry(); err != nil {
		log.Fatalf("Registry invalid: %v", err)
	}

	if *validateOnly {
		fmt.Printf("Registry OK: %d rooms\n", room.Count())
		return
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := room.ExportTemplatesYAML(w, room.Registry()); err != nil {
		log.Fatalf("Failed to export registry: %v", err)
	}
}
