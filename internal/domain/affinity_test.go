package domain

import "testing"

func TestExtractBestAffinity(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   float64
		ok     bool
	}{
		{
			name: "rank 1 line with trailing columns",
			output: "mode |   affinity | dist from best mode\n" +
				"-----+------------+--------------------\n" +
				"   1    -7.4   0.000   0.000\n" +
				"   2    -7.1   1.223   2.105\n",
			want: -7.4,
			ok:   true,
		},
		{
			name:   "rank 1 at line start",
			output: "1   -8.2  0.0  0.0\n2  -8.0  1.1  1.9\n",
			want:   -8.2,
			ok:     true,
		},
		{
			name:   "positive affinity",
			output: "   1    2.5   0.000   0.000\n",
			want:   2.5,
			ok:     true,
		},
		{
			name:   "no rank 1 line",
			output: "Reading input ... done.\nRefining results ... done.\n",
			ok:     false,
		},
		{
			name:   "rank 1 appears mid-line only",
			output: "step 11    -7.4   0.000\n",
			ok:     false,
		},
		{
			name:   "empty output",
			output: "",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBestAffinity(tt.output)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("affinity = %v, want %v", got, tt.want)
			}
		})
	}
}
