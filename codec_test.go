package trk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const filler = -858993460

// testTrack builds a two-section model: a straight of length 1000 along +X
// from the origin, then a quarter-turn left curve of radius 1000 around
// (1000, 1000). Two cross-section columns at dlat -100 and +100.
func testTrack() *Track {
	t := &Track{
		Header: Header{
			FileType:      FileType,
			Version:       FileVersion,
			TrackLength:   2571,
			NumXsects:     2,
			NumSects:      2,
			FsectBytes:    3 * floorRecordWords * wordBytes,
			SectDataBytes: 2 * sectionRecordWords * wordBytes,
		},
	}
	t.XsectDlats[0] = -100
	t.XsectDlats[1] = 100

	straight := Section{
		Kind:       KindStraight,
		StartDLong: 0,
		Length:     1000,
		Heading:    0,
		Ang1:       1 << 30,
		Ang4:       1 << 30,
		Ang5:       1 << 30,
		NumGround:  2,
		GroundCur:  0,
		NumWalls:   1,
		Cross: []CrossSection{
			{Alt: 0, Pos1: 0, Pos2: -100},
			{Alt: 0, Pos1: 0, Pos2: 100},
		},
		Floor: []FloorSegment{
			{Start: -100, End: 0, GroundType: 1},
			{Start: 0, End: 100, GroundType: 2},
		},
	}
	straight.Boundaries[0] = Boundary{Type: 102, DlatStart: -120, DlatEnd: 120, Reserved0: filler, Reserved1: filler}

	curve := Section{
		Kind:       KindCurve,
		StartDLong: 1000,
		Length:     1571,
		Heading:    0,
		Ang1:       1000,
		Ang2:       1000,
		Ang3:       1 << 29, // half of a +90 degree sweep
		Ang4:       filler,
		Ang5:       filler,
		Unknown:    2,
		NumGround:  1,
		GroundCur:  2,
		Cross: []CrossSection{
			{Alt: 500, Pos1: 1100, Pos2: filler},
			{Alt: 500, Pos1: 900, Pos2: filler},
		},
		Floor: []FloorSegment{
			{Start: -100, End: 100, GroundType: 1},
		},
	}

	t.Sections = []Section{straight, curve}
	return t
}

func TestCodec_RoundTrip(t *testing.T) {
	track := testTrack()
	data, err := Encode(track)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(track, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_DerivesOffsets(t *testing.T) {
	data, err := Encode(testTrack())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	words := wordsOf(data)
	offsetsAt := headerWords + MaxCrossSections
	if words[offsetsAt] != 0 || words[offsetsAt+1] != sectionRecordWords {
		t.Errorf("offset table = [%d %d], want [0 %d]", words[offsetsAt], words[offsetsAt+1], sectionRecordWords)
	}
	if words[5] != 36 {
		t.Errorf("fsects_bytes = %d, want 36", words[5])
	}
	if words[6] != 2*sectionRecordWords*wordBytes {
		t.Errorf("sect_data_bytes = %d, want %d", words[6], 2*sectionRecordWords*wordBytes)
	}
}

func TestEncode_RejectsInconsistentModel(t *testing.T) {
	track := testTrack()
	track.Sections[0].NumGround = 3 // carries only 2 floor segments
	if _, err := Encode(track); !isValidation(err) {
		t.Errorf("floor count mismatch: got %v, want ValidationError", err)
	}

	track = testTrack()
	track.Sections[1].Cross = track.Sections[1].Cross[:1]
	if _, err := Encode(track); !isValidation(err) {
		t.Errorf("cross count mismatch: got %v, want ValidationError", err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	data, err := Encode(testTrack())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"header only", data[:headerWords*wordBytes]},
		{"cut mid table", data[:len(data)-wordBytes]},
		{"odd byte count", data[:len(data)-2]},
		{"trailing bytes", append(append([]byte(nil), data...), 0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("got %v, want FormatError", err)
			}
		})
	}
}

func TestDecode_Validation(t *testing.T) {
	base, err := Encode(testTrack())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Word indices into the encoded layout of testTrack: the offset table
	// starts at word 17, cross records at 19, floor records at 51, and
	// section records at 60.
	const sectsAt = 60
	tests := []struct {
		name string
		word int
		set  int32
	}{
		{"fsects bytes not multiple", 5, 40},
		{"sect bytes not multiple", 6, 100},
		{"sect bytes wrong record count", 6, sectionRecordWords * wordBytes},
		{"xsect count too large", 3, MaxCrossSections + 1},
		{"negative section count", 4, -1},
		{"bad section offset", 18, 32},
		{"unknown section kind", sectsAt, 7},
		{"wall count too large", sectsAt + 12, MaxBoundaries + 1},
		{"floor claim past table end", sectsAt + 10, 5},
		{"stale floor cursor", sectsAt + sectionRecordWords + 11, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]byte(nil), base...)
			putWord(data, tt.word, tt.set)
			if _, err := Decode(data); !isValidation(err) {
				t.Errorf("got %v, want ValidationError", err)
			}
		})
	}
}

func isValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func wordsOf(data []byte) []int32 {
	words := make([]int32, len(data)/wordBytes)
	for i := range words {
		words[i] = int32(uint32(data[i*wordBytes]) |
			uint32(data[i*wordBytes+1])<<8 |
			uint32(data[i*wordBytes+2])<<16 |
			uint32(data[i*wordBytes+3])<<24)
	}
	return words
}

func putWord(data []byte, i int, v int32) {
	data[i*wordBytes] = byte(v)
	data[i*wordBytes+1] = byte(uint32(v) >> 8)
	data[i*wordBytes+2] = byte(uint32(v) >> 16)
	data[i*wordBytes+3] = byte(uint32(v) >> 24)
}
