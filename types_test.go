package reshape

import "testing"

func TestDataType_Size(t *testing.T) {
	tests := []struct {
		typ      DataType
		expected int
	}{
		{DataTypeUByte, 1},
		{DataTypeHalf, 2},
		{DataTypeFloat, 4},
		{DataTypeInt, 4},
		{DataTypeUInt, 4},
		{DataType(42), 0},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.Size(); got != tt.expected {
				t.Errorf("Size() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDataType_IsValid(t *testing.T) {
	for typ := DataTypeUByte; typ < dataTypeCount; typ++ {
		if !typ.IsValid() {
			t.Errorf("IsValid(%v) = false, want true", typ)
		}
	}
	if DataType(200).IsValid() {
		t.Error("IsValid(200) = true, want false")
	}
}

func TestPixelFormat_Channels(t *testing.T) {
	tests := []struct {
		format   PixelFormat
		expected int
	}{
		{PixelFormatRGB, 3},
		{PixelFormatRGBA, 4},
		{PixelFormat(42), 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Channels(); got != tt.expected {
				t.Errorf("Channels() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// The maximum-value mapping is fixed by the conversion contract and must
// never drift: it is both the rescale reference and the padding fill.
func TestMaxValue(t *testing.T) {
	if got := MaxValue[uint8](); got != 0xff {
		t.Errorf("MaxValue[uint8]() = %#x, want 0xff", got)
	}
	if got := MaxValue[uint16](); got != 0x3c00 {
		t.Errorf("MaxValue[uint16]() = %#x, want 0x3c00", got)
	}
	if got := MaxValue[float32](); got != 1.0 {
		t.Errorf("MaxValue[float32]() = %v, want 1.0", got)
	}
	if got := MaxValue[int32](); got != 0x7fffffff {
		t.Errorf("MaxValue[int32]() = %#x, want 0x7fffffff", got)
	}
	if got := MaxValue[uint32](); got != 0xffffffff {
		t.Errorf("MaxValue[uint32]() = %#x, want 0xffffffff", got)
	}
}

func TestMaxValueTable_MatchesTyped(t *testing.T) {
	if maxValueTable[DataTypeUByte] != float64(MaxValue[uint8]()) {
		t.Error("table entry for UByte disagrees with MaxValue[uint8]")
	}
	if maxValueTable[DataTypeHalf] != float64(MaxValue[uint16]()) {
		t.Error("table entry for Half disagrees with MaxValue[uint16]")
	}
	if maxValueTable[DataTypeFloat] != float64(MaxValue[float32]()) {
		t.Error("table entry for Float disagrees with MaxValue[float32]")
	}
	if maxValueTable[DataTypeInt] != float64(MaxValue[int32]()) {
		t.Error("table entry for Int disagrees with MaxValue[int32]")
	}
	if maxValueTable[DataTypeUInt] != float64(MaxValue[uint32]()) {
		t.Error("table entry for UInt disagrees with MaxValue[uint32]")
	}
}
