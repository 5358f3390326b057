package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
// Numeric fields are zero when ffprobe omitted them.
type FormatInfo struct {
	Filename   string
	NbStreams  int
	FormatName string
	Duration   float64 // Seconds.
	Size       int64   // Bytes.
	BitRate    int64   // Bits per second.
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index      int
	Codec      string
	Width      int
	Height     int
	RFrameRate string // Rational "num/den" text, e.g. "30000/1001".
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index      int
	Codec      string
	Channels   int
	SampleRate int
	Language   string
}

// Result is the fully parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first video stream (nil if none).
type Result struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
	AudioStreams []AudioStream
}

// HasAudio reports whether at least one audio stream is present.
func (r *Result) HasAudio() bool {
	return len(r.AudioStreams) > 0
}
