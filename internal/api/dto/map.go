package dto

type CrosswalkDTO struct {
	ID              string  `json:"id"`
	Address         string  `json:"address"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	HasSignal       bool    `json:"has_signal"`
	HasButton       bool    `json:"has_button"`
	HasSoundSignal  bool    `json:"has_sound_signal"`
	HasBrailleBlock bool    `json:"has_braille_block"`
}

type SignalDTO struct {
	ID             string  `json:"id"`
	Address        string  `json:"address"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	SignalType     string  `json:"signal_type"`
	HasPedButton   bool    `json:"has_ped_button"`
	HasTimeShow    bool    `json:"has_time_show"`
	HasSoundSignal bool    `json:"has_sound_signal"`
}

type HotspotDTO struct {
	ID            uint64  `json:"id"`
	Year          int     `json:"year"`
	Detail        string  `json:"detail"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	AccidentCount int     `json:"accident_count"`
	CasualtyCount int     `json:"casualty_count"`
	FatalityCount int     `json:"fatality_count"`
}
