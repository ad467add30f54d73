package athlete

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00.00"},
		{10, "00:00.01"},
		{990, "00:00.99"},
		{1000, "00:01.00"},
		{60000, "01:00.00"},
		{130000, "02:10.00"},
		{4530120, "75:30.12"},
		{-500, "00:00.00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.ms); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"01:00.00", 60000},
		{"2:10", 130000},
		{"0:30.5", 30500},
		{"90", 90000},
		{"12.34", 12340},
		{"  1:05  ", 65000},
		{"", 0},
		{"abc", 0},
		{"1:2:3", 0},
		{"-5", 0},
		{"-1:30", 0},
	}

	for _, tt := range tests {
		if got := ParseTime(tt.in); got != tt.want {
			t.Errorf("ParseTime(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, ms := range []int64{0, 10, 59990, 60000, 3599990} {
		if got := ParseTime(FormatTime(ms)); got != ms {
			t.Errorf("round trip %d -> %q -> %d", ms, FormatTime(ms), got)
		}
	}
}
