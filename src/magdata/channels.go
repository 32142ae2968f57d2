package magdata

import "time"

// Channel identifies one of the twelve measurement columns, in file order.
type Channel int

const (
	BISX Channel = iota
	BISY
	BISZ
	BIST
	BOSX
	BOSY
	BOSZ
	BOST
	BISBOSX
	BISBOSY
	BISBOSZ
	BISBOST

	NumChannels = 12
)

var channelNames = [NumChannels]string{
	"BISX", "BISY", "BISZ", "BIST",
	"BOSX", "BOSY", "BOSZ", "BOST",
	"BIS_BOS_X", "BIS_BOS_Y", "BIS_BOS_Z", "BIS_BOS_T",
}

// String returns the column label used in the file header and chart legends.
func (c Channel) String() string {
	if c < 0 || int(c) >= NumChannels {
		return "unknown"
	}
	return channelNames[c]
}

// AllChannels lists every measurement channel in file order.
var AllChannels = []Channel{BISX, BISY, BISZ, BIST, BOSX, BOSY, BOSZ, BOST, BISBOSX, BISBOSY, BISBOSZ, BISBOST}

// DifferenceChannels are the per-axis and total BIS minus BOS channels.
var DifferenceChannels = []Channel{BISBOSX, BISBOSY, BISBOSZ, BISBOST}

// Dataset holds one file's rows as parallel column sequences.
type Dataset struct {
	Times  []time.Time
	Values [NumChannels][]float64
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Times)
}

// Column returns the sequence for one channel.
func (d *Dataset) Column(c Channel) []float64 {
	if d == nil || c < 0 || int(c) >= NumChannels {
		return nil
	}
	return d.Values[c]
}
