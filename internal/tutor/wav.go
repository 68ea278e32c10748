package tutor

import "encoding/binary"

// Gemini TTS returns raw 16-bit mono PCM at 24 kHz.
const (
	pcmSampleRate = 24000
	pcmChannels   = 1
	pcmBitDepth   = 16
)

// WrapPCM frames raw narration PCM as a WAV file so any player can
// read it.
func WrapPCM(pcm []byte) []byte {
	byteRate := pcmSampleRate * pcmChannels * pcmBitDepth / 8
	blockAlign := pcmChannels * pcmBitDepth / 8

	out := make([]byte, 0, 44+len(pcm))
	u32 := func(v uint32) []byte {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		return b[:]
	}
	u16 := func(v uint16) []byte {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], v)
		return b[:]
	}

	out = append(out, "RIFF"...)
	out = append(out, u32(uint32(36+len(pcm)))...)
	out = append(out, "WAVE"...)
	out = append(out, "fmt "...)
	out = append(out, u32(16)...)
	out = append(out, u16(1)...) // PCM
	out = append(out, u16(pcmChannels)...)
	out = append(out, u32(pcmSampleRate)...)
	out = append(out, u32(uint32(byteRate))...)
	out = append(out, u16(uint16(blockAlign))...)
	out = append(out, u16(pcmBitDepth)...)
	out = append(out, "data"...)
	out = append(out, u32(uint32(len(pcm)))...)
	out = append(out, pcm...)
	return out
}
