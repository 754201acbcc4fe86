/*
trkdump prints the contents of binary track files to standard output, and
can optionally export the diagnostics CSV set consumed by external tooling.

Usage:

	trkdump [-xsects] [-csv base] [filenames...]
*/
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/icr2tools/trk"
)

func main() {
	var (
		xsects  = flag.Bool("xsects", false, "print per-column cross-section records")
		csvBase = flag.String("csv", "", "write diagnostics CSV files with this base name")
	)
	flag.Parse()

	for _, fn := range flag.Args() {
		track, err := trk.DecodeFile(fn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", fn, err)
			continue
		}
		dump(track, *xsects)
		if *csvBase != "" {
			if err := writeCSVs(track, *csvBase); err != nil {
				log.Fatalf("%s: %s", fn, err)
			}
		}
	}
}

func dump(t *trk.Track, xsects bool) {
	h := t.Header
	fmt.Printf("trackLength: %d\n", h.TrackLength)
	fmt.Printf("numXsections: %d\n", h.NumXsects)
	fmt.Printf("numSections: %d\n", h.NumSects)
	fmt.Printf("sizeF: %d\n", h.FsectBytes)
	fmt.Printf("sizeS: %d\n", h.SectDataBytes)

	for i := 0; i < int(h.NumXsects); i++ {
		fmt.Printf(" xdlat %d: %d\n", i, t.XsectDlats[i])
	}

	for i := range t.Sections {
		s := &t.Sections[i]
		fmt.Printf("Section %d: %s\n", i, s.Kind)
		fmt.Printf("  dlong %d length %d heading %d\n", s.StartDLong, s.Length, s.Heading)
		switch s.Kind {
		case trk.KindCurve:
			fmt.Printf("   Xcenter=%d Ycenter=%d dHeading=%d\n", s.Ang1, s.Ang2, s.Ang3)
		default:
			fmt.Printf("   Xdir=%d Ydir=%d Xperp=%d Yperp=%d cosgrade2=%d\n",
				s.Ang1, s.Ang2, s.Ang3, s.Ang4, s.Ang5)
		}
		if xsects {
			for x, c := range s.Cross {
				fmt.Printf("     xs %d: %d %d %d %d %d %d\n",
					x, c.Grade1, c.Grade2, c.Grade3, c.Alt, c.Grade4, c.Grade5)
				switch s.Kind {
				case trk.KindCurve:
					fmt.Printf("        dlatCenter: %d\n", c.Pos1)
				default:
					fmt.Printf("        x0: %d y0: %d\n", c.Pos1, c.Pos2)
				}
			}
		}
		for f, seg := range s.Floor {
			fmt.Printf("      fs %d: %d %d %d\n", f, seg.Start, seg.End, seg.GroundType)
		}
	}
}

func writeCSVs(t *trk.Track, base string) error {
	if err := writeHeaderCSV(t, base+"-header.csv"); err != nil {
		return err
	}
	if err := writeXsectCSV(t, base+"-xsect.csv"); err != nil {
		return err
	}
	return writeSectionsCSV(t, base+"-sects.csv")
}

func writeCSV(path string, write func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeHeaderCSV(t *trk.Track, path string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"type", "version", "track_length", "number_of_xsects", "number_of_sects", "byte_length_fsects", "byte_length_sect_data"}); err != nil {
			return err
		}
		h := t.Header
		return w.Write(ints(h.FileType, h.Version, h.TrackLength, h.NumXsects, h.NumSects, h.FsectBytes, h.SectDataBytes))
	})
}

func writeXsectCSV(t *trk.Track, path string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"sect", "xsect", "grade1", "grade2", "grade3", "alt", "grade4", "grade5", "pos1", "pos2"}); err != nil {
			return err
		}
		for i := range t.Sections {
			for x, c := range t.Sections[i].Cross {
				row := append(ints(int32(i), int32(x)),
					ints(c.Grade1, c.Grade2, c.Grade3, c.Alt, c.Grade4, c.Grade5, c.Pos1, c.Pos2)...)
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeSectionsCSV(t *trk.Track, path string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		head := []string{"sect", "type", "start_dlong", "length", "heading",
			"ang1", "ang2", "ang3", "ang4", "ang5",
			"unknown_counter", "ground_fsects", "ground_counter", "num_wall_fsects"}
		for b := 0; b < trk.MaxBoundaries; b++ {
			head = append(head,
				fmt.Sprintf("boundary%d_type", b),
				fmt.Sprintf("boundary%d_dlat_start", b),
				fmt.Sprintf("boundary%d_dlat_end", b),
				"placeholder1", "placeholder2")
		}
		if err := w.Write(head); err != nil {
			return err
		}
		for i := range t.Sections {
			s := &t.Sections[i]
			row := ints(int32(i), int32(s.Kind), s.StartDLong, s.Length, s.Heading,
				s.Ang1, s.Ang2, s.Ang3, s.Ang4, s.Ang5,
				s.Unknown, s.NumGround, s.GroundCur, s.NumWalls)
			for _, b := range s.Boundaries {
				row = append(row, ints(b.Type, b.DlatStart, b.DlatEnd, b.Reserved0, b.Reserved1)...)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func ints(vs ...int32) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(int(v))
	}
	return out
}
