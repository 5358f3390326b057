package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Realistic ffprobe JSON for an MP4 with one H.264 video stream
// (1920x1080 @ 30000/1001) and one AAC stereo audio stream.
const sampleFull = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "r_frame_rate": "30000/1001",
      "avg_frame_rate": "30000/1001",
      "pix_fmt": "yuv420p",
      "tags": {}
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 2,
      "channel_layout": "stereo",
      "sample_rate": "44100",
      "tags": { "language": "eng" }
    }
  ],
  "format": {
    "filename": "/data/train_videos/clip_0001.mp4",
    "nb_streams": 2,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "12.480000",
    "size": "3145728",
    "bit_rate": "2016492"
  }
}`

// Video-only file: no audio stream at all.
const sampleNoAudio = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 640,
      "height": 360,
      "r_frame_rate": "25/1",
      "tags": {}
    }
  ],
  "format": {
    "filename": "silent.mp4",
    "nb_streams": 1,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "0.000000",
    "size": "1024",
    "bit_rate": "81920"
  }
}`

// Audio-only file: a podcast-style MP4 with no video stream.
const sampleAudioOnly = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 1,
      "sample_rate": "48000",
      "tags": {}
    }
  ],
  "format": {
    "filename": "voiceover.mp4",
    "nb_streams": 1,
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "300.500000",
    "size": "2400000",
    "bit_rate": "64000"
  }
}`

// Degenerate output: empty format section and no streams, as produced for
// some corrupt files when ffprobe still exits zero.
const sampleEmpty = `{ "streams": [], "format": {} }`

func TestParseJSON_FullFile(t *testing.T) {
	r, err := ParseJSON([]byte(sampleFull))
	require.NoError(t, err)

	assert.Equal(t, "/data/train_videos/clip_0001.mp4", r.Format.Filename)
	assert.Equal(t, 2, r.Format.NbStreams)
	assert.Equal(t, 12.48, r.Format.Duration)
	assert.Equal(t, int64(3145728), r.Format.Size)
	assert.Equal(t, int64(2016492), r.Format.BitRate)

	require.NotNil(t, r.PrimaryVideo)
	assert.Equal(t, 0, r.PrimaryVideo.Index)
	assert.Equal(t, "h264", r.PrimaryVideo.Codec)
	assert.Equal(t, 1920, r.PrimaryVideo.Width)
	assert.Equal(t, 1080, r.PrimaryVideo.Height)
	assert.Equal(t, "30000/1001", r.PrimaryVideo.RFrameRate)

	require.Len(t, r.AudioStreams, 1)
	assert.Equal(t, "aac", r.AudioStreams[0].Codec)
	assert.Equal(t, 2, r.AudioStreams[0].Channels)
	assert.Equal(t, 44100, r.AudioStreams[0].SampleRate)
	assert.Equal(t, "eng", r.AudioStreams[0].Language)
	assert.True(t, r.HasAudio())
}

func TestParseJSON_NoAudio(t *testing.T) {
	r, err := ParseJSON([]byte(sampleNoAudio))
	require.NoError(t, err)

	require.NotNil(t, r.PrimaryVideo)
	assert.Equal(t, 640, r.PrimaryVideo.Width)
	assert.Empty(t, r.AudioStreams)
	assert.False(t, r.HasAudio())

	// Zero-duration files parse cleanly.
	assert.Equal(t, 0.0, r.Format.Duration)
}

func TestParseJSON_AudioOnly(t *testing.T) {
	r, err := ParseJSON([]byte(sampleAudioOnly))
	require.NoError(t, err)

	assert.Nil(t, r.PrimaryVideo)
	assert.True(t, r.HasAudio())
	assert.Equal(t, 300.5, r.Format.Duration)
}

func TestParseJSON_EmptyOutput(t *testing.T) {
	r, err := ParseJSON([]byte(sampleEmpty))
	require.NoError(t, err)

	assert.Nil(t, r.PrimaryVideo)
	assert.False(t, r.HasAudio())
	assert.Equal(t, 0.0, r.Format.Duration)
	assert.Equal(t, int64(0), r.Format.BitRate)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte("not json at all"))
	assert.Error(t, err)

	_, err = ParseJSON(nil)
	assert.Error(t, err)
}

func TestParseJSON_FirstVideoStreamWins(t *testing.T) {
	const twoVideos = `{
	  "streams": [
	    { "index": 0, "codec_name": "h264", "codec_type": "video", "width": 1280, "height": 720, "r_frame_rate": "24/1" },
	    { "index": 1, "codec_name": "hevc", "codec_type": "video", "width": 3840, "height": 2160, "r_frame_rate": "60/1" }
	  ],
	  "format": { "duration": "1.0" }
	}`
	r, err := ParseJSON([]byte(twoVideos))
	require.NoError(t, err)
	require.NotNil(t, r.PrimaryVideo)
	assert.Equal(t, 0, r.PrimaryVideo.Index)
	assert.Equal(t, 1280, r.PrimaryVideo.Width)
}

func TestNumericParsing_DefaultsToZero(t *testing.T) {
	// ffprobe reports numbers as strings; garbage degrades to zero values
	// rather than failing the whole parse.
	const oddNumbers = `{
	  "streams": [
	    { "index": 0, "codec_name": "aac", "codec_type": "audio", "sample_rate": "fast" }
	  ],
	  "format": { "duration": "n/a", "bit_rate": "  " }
	}`
	r, err := ParseJSON([]byte(oddNumbers))
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Format.Duration)
	assert.Equal(t, int64(0), r.Format.BitRate)
	require.Len(t, r.AudioStreams, 1)
	assert.Equal(t, 0, r.AudioStreams[0].SampleRate)
}
