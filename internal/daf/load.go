package daf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// cyclesFile is the YAML document accepted by Load:
//
//	cycles:
//	  - name: yerushalmi
//	    start: 1980-02-02
//	    no_reading: fast_days
//	    volumes:
//	      - {name: Berachos, pages: 68, first_folio: 1}
type cyclesFile struct {
	Cycles []cycleDoc `yaml:"cycles"`
}

type cycleDoc struct {
	Name      string      `yaml:"name"`
	Start     string      `yaml:"start"`
	NoReading string      `yaml:"no_reading"`
	Volumes   []volumeDoc `yaml:"volumes"`
}

type volumeDoc struct {
	Name       string `yaml:"name"`
	Pages      int    `yaml:"pages"`
	FirstFolio int    `yaml:"first_folio"`
}

// NoReading values accepted in YAML.
const (
	noReadingFastDays = "fast_days"
	noReadingNone     = "none"
)

// Load parses cycle definitions from r. Every cycle is validated.
func Load(r io.Reader) ([]Cycle, error) {
	var doc cyclesFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode cycles: %w", err)
	}

	out := make([]Cycle, 0, len(doc.Cycles))
	for i, cd := range doc.Cycles {
		c, err := cd.cycle()
		if err != nil {
			return nil, fmt.Errorf("cycle %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadFile reads cycle definitions from a YAML file.
func LoadFile(path string) ([]Cycle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cycles file: %w", err)
	}
	return Load(bytes.NewReader(data))
}

func (cd cycleDoc) cycle() (Cycle, error) {
	start, err := hebdate.ParseEpochDay(cd.Start)
	if err != nil {
		return Cycle{}, fmt.Errorf("%w %q: start: %w", ErrInvalidCycle, cd.Name, err)
	}

	var nr NoReading
	switch cd.NoReading {
	case "", noReadingFastDays:
		nr = FastDays{}
	case noReadingNone:
		nr = noExclusions{}
	default:
		return Cycle{}, fmt.Errorf("%w %q: unknown no_reading %q", ErrInvalidCycle, cd.Name, cd.NoReading)
	}

	c := Cycle{Name: cd.Name, Start: start, NoReading: nr}
	for _, vd := range cd.Volumes {
		folio := vd.FirstFolio
		if folio == 0 {
			folio = 1
		}
		c.Volumes = append(c.Volumes, Volume{Name: vd.Name, Pages: vd.Pages, FirstFolio: folio})
	}
	if err := c.Validate(); err != nil {
		return Cycle{}, err
	}
	return c, nil
}

// Marshal renders cycles in the format read by Load.
func Marshal(cycles []Cycle) ([]byte, error) {
	doc := cyclesFile{Cycles: make([]cycleDoc, 0, len(cycles))}
	for _, c := range cycles {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("cannot marshal invalid cycle: %w", err)
		}
		nr := noReadingFastDays
		if _, ok := c.NoReading.(FastDays); !ok {
			nr = noReadingNone
		}
		cd := cycleDoc{Name: c.Name, Start: c.Start.String(), NoReading: nr}
		for _, v := range c.Volumes {
			cd.Volumes = append(cd.Volumes, volumeDoc(v))
		}
		doc.Cycles = append(doc.Cycles, cd)
	}
	return yaml.Marshal(doc)
}
