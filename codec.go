package trk

import (
	"encoding/binary"
	"os"
)

// Decode parses a complete track file into a Track model.
//
// Structural problems (truncated buffer, trailing bytes) return a
// *FormatError; semantically invalid counts and lengths return a
// *ValidationError. In both cases no partial model is returned.
func Decode(data []byte) (*Track, error) {
	if len(data)%wordBytes != 0 {
		return nil, formatErr(len(data), "length %d is not a whole number of 32-bit words", len(data))
	}
	words := make([]int32, len(data)/wordBytes)
	for i := range words {
		words[i] = int32(binary.LittleEndian.Uint32(data[i*wordBytes:]))
	}

	if len(words) < headerWords+MaxCrossSections {
		return nil, formatErr(len(data), "truncated header")
	}
	h := Header{
		FileType:      words[0],
		Version:       words[1],
		TrackLength:   words[2],
		NumXsects:     words[3],
		NumSects:      words[4],
		FsectBytes:    words[5],
		SectDataBytes: words[6],
	}

	if h.NumXsects < 0 || h.NumXsects > MaxCrossSections {
		return nil, validationErr("header", "cross-section count %d outside [0, %d]", h.NumXsects, MaxCrossSections)
	}
	if h.NumSects < 0 {
		return nil, validationErr("header", "negative section count %d", h.NumSects)
	}
	if h.FsectBytes < 0 || h.FsectBytes%(floorRecordWords*wordBytes) != 0 {
		return nil, validationErr("header", "floor-segment table length %d is not a multiple of the %d-byte record size", h.FsectBytes, floorRecordWords*wordBytes)
	}
	if h.SectDataBytes < 0 || h.SectDataBytes%(sectionRecordWords*wordBytes) != 0 {
		return nil, validationErr("header", "section table length %d is not a multiple of the %d-byte record size", h.SectDataBytes, sectionRecordWords*wordBytes)
	}
	if int(h.SectDataBytes)/(sectionRecordWords*wordBytes) != int(h.NumSects) {
		return nil, validationErr("header", "section table length %d does not hold %d records", h.SectDataBytes, h.NumSects)
	}

	numSects := int(h.NumSects)
	numXsects := int(h.NumXsects)
	floorWords := int(h.FsectBytes) / wordBytes
	sectWords := int(h.SectDataBytes) / wordBytes

	offsetsAt := headerWords + MaxCrossSections
	crossAt := offsetsAt + numSects
	floorAt := crossAt + numSects*numXsects*crossRecordWords
	sectsAt := floorAt + floorWords
	total := sectsAt + sectWords

	if len(words) < total {
		return nil, formatErr(len(data), "file holds %d words but header declares %d", len(words), total)
	}
	if len(words) > total {
		return nil, formatErr(total*wordBytes, "%d trailing bytes past declared layout", (len(words)-total)*wordBytes)
	}

	t := &Track{Header: h}
	copy(t.XsectDlats[:], words[headerWords:offsetsAt])

	// The offset table is data, but with fixed-size records every entry is
	// determined; anything else cannot index the section table it claims
	// to describe. The implicit final offset sect_data_bytes/4 is covered
	// by the record-count check above.
	for i := 0; i < numSects; i++ {
		if off := int(words[offsetsAt+i]); off != i*sectionRecordWords {
			return nil, validationErr("section offsets", "section %d starts at word %d, expected %d", i, off, i*sectionRecordWords)
		}
	}

	floorTable := make([]FloorSegment, floorWords/floorRecordWords)
	for i := range floorTable {
		w := words[floorAt+i*floorRecordWords:]
		floorTable[i] = FloorSegment{Start: w[0], End: w[1], GroundType: w[2]}
	}

	t.Sections = make([]Section, numSects)
	cursor := 0
	for i := 0; i < numSects; i++ {
		w := words[sectsAt+i*sectionRecordWords:]
		s := &t.Sections[i]
		s.Kind = SectionKind(w[0])
		s.StartDLong = w[1]
		s.Length = w[2]
		s.Heading = w[3]
		s.Ang1, s.Ang2, s.Ang3, s.Ang4, s.Ang5 = w[4], w[5], w[6], w[7], w[8]
		s.Unknown = w[9]
		s.NumGround = w[10]
		s.GroundCur = w[11]
		s.NumWalls = w[12]
		s.Reserved = w[13]
		for b := 0; b < MaxBoundaries; b++ {
			bw := w[sectionFixedWords+b*boundaryWords:]
			s.Boundaries[b] = Boundary{
				Type:      bw[0],
				DlatStart: bw[1],
				DlatEnd:   bw[2],
				Reserved0: bw[3],
				Reserved1: bw[4],
			}
		}

		if s.Kind != KindStraight && s.Kind != KindCurve {
			return nil, validationErr("section", "section %d has unknown kind %d", i, int32(s.Kind))
		}
		if s.NumWalls < 0 || s.NumWalls > MaxBoundaries {
			return nil, validationErr("section", "section %d declares %d wall segments, at most %d fit", i, s.NumWalls, MaxBoundaries)
		}
		if s.NumGround < 0 || cursor+int(s.NumGround) > len(floorTable) {
			return nil, validationErr("floor segments", "section %d claims %d segments at cursor %d, table holds %d", i, s.NumGround, cursor, len(floorTable))
		}
		if int(s.GroundCur) != cursor {
			return nil, validationErr("floor segments", "section %d stores cursor %d, running cursor is %d", i, s.GroundCur, cursor)
		}
		s.Floor = append([]FloorSegment(nil), floorTable[cursor:cursor+int(s.NumGround)]...)
		cursor += int(s.NumGround)

		s.Cross = make([]CrossSection, numXsects)
		for x := 0; x < numXsects; x++ {
			cw := words[crossAt+(i*numXsects+x)*crossRecordWords:]
			s.Cross[x] = CrossSection{
				Grade1: cw[0], Grade2: cw[1], Grade3: cw[2],
				Alt:    cw[3],
				Grade4: cw[4], Grade5: cw[5],
				Pos1: cw[6], Pos2: cw[7],
			}
		}
	}
	if cursor != len(floorTable) {
		return nil, validationErr("floor segments", "table holds %d records but sections claim %d", len(floorTable), cursor)
	}

	logger().Debug("decoded track",
		"sections", numSects,
		"xsects", numXsects,
		"floorSegments", len(floorTable),
		"trackLength", h.TrackLength)
	return t, nil
}

// Encode serializes a Track back to the binary file layout.
//
// The section-offset table, the stored floor-segment cursors, and both
// byte-length header fields are recomputed from the actual record content,
// never replayed from the decoded values, so the output stays consistent
// after any model mutation. Decode(Encode(m)) equals m for every m that
// Decode produced.
func Encode(t *Track) ([]byte, error) {
	numSects := len(t.Sections)
	numXsects := int(t.Header.NumXsects)
	if numXsects < 0 || numXsects > MaxCrossSections {
		return nil, validationErr("header", "cross-section count %d outside [0, %d]", numXsects, MaxCrossSections)
	}

	floorCount := 0
	for i := range t.Sections {
		s := &t.Sections[i]
		if len(s.Cross) != numXsects {
			return nil, validationErr("section", "section %d carries %d cross-section records, header declares %d", i, len(s.Cross), numXsects)
		}
		if int(s.NumGround) != len(s.Floor) {
			return nil, validationErr("section", "section %d declares %d floor segments but carries %d", i, s.NumGround, len(s.Floor))
		}
		if s.NumWalls < 0 || s.NumWalls > MaxBoundaries {
			return nil, validationErr("section", "section %d declares %d wall segments, at most %d fit", i, s.NumWalls, MaxBoundaries)
		}
		floorCount += len(s.Floor)
	}

	h := t.Header
	h.NumSects = int32(numSects)
	h.FsectBytes = int32(floorCount * floorRecordWords * wordBytes)
	h.SectDataBytes = int32(numSects * sectionRecordWords * wordBytes)

	total := headerWords + MaxCrossSections + numSects +
		numSects*numXsects*crossRecordWords +
		floorCount*floorRecordWords +
		numSects*sectionRecordWords
	words := make([]int32, 0, total)

	words = append(words, h.FileType, h.Version, h.TrackLength, h.NumXsects, h.NumSects, h.FsectBytes, h.SectDataBytes)
	words = append(words, t.XsectDlats[:]...)
	for i := 0; i < numSects; i++ {
		words = append(words, int32(i*sectionRecordWords))
	}
	for i := range t.Sections {
		for _, c := range t.Sections[i].Cross {
			words = append(words, c.Grade1, c.Grade2, c.Grade3, c.Alt, c.Grade4, c.Grade5, c.Pos1, c.Pos2)
		}
	}
	for i := range t.Sections {
		for _, f := range t.Sections[i].Floor {
			words = append(words, f.Start, f.End, f.GroundType)
		}
	}
	cursor := int32(0)
	for i := range t.Sections {
		s := &t.Sections[i]
		words = append(words, int32(s.Kind), s.StartDLong, s.Length, s.Heading,
			s.Ang1, s.Ang2, s.Ang3, s.Ang4, s.Ang5,
			s.Unknown, s.NumGround, cursor, s.NumWalls, s.Reserved)
		cursor += s.NumGround
		for _, b := range s.Boundaries {
			words = append(words, b.Type, b.DlatStart, b.DlatEnd, b.Reserved0, b.Reserved1)
		}
	}

	data := make([]byte, len(words)*wordBytes)
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[i*wordBytes:], uint32(w))
	}
	return data, nil
}

// DecodeFile reads and decodes a track file in one synchronous call.
func DecodeFile(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// EncodeFile encodes a track and writes it to path.
func EncodeFile(t *Track, path string) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
