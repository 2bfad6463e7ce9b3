package assets

import (
	"math"
	"math/rand"
)

const SampleRate = 44100

const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono samples at unity gain.
type floatBuffer []float64

func durationToSamples(sec float64) int {
	return int(sec * SampleRate)
}

// oscillator sweeps linearly from freq to endFreq over the buffer.
func oscillator(waveType int, freq, endFreq float64, samples int, rng *rand.Rand) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		f := freq
		if samples > 1 {
			f += (endFreq - freq) * float64(i) / float64(samples-1)
		}
		phase += f / SampleRate
		for phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attack := durationToSamples(attackSec)
	release := durationToSamples(releaseSec)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// lowPass is a one-pole smoothing filter; alpha in (0,1], lower is darker.
func lowPass(buf floatBuffer, alpha float64) {
	prev := 0.0
	for i, v := range buf {
		prev += alpha * (v - prev)
		buf[i] = prev
	}
}

// mix adds b scaled into a, extending a if needed.
func mix(a, b floatBuffer, scale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

func concat(bufs ...floatBuffer) floatBuffer {
	n := 0
	for _, b := range bufs {
		n += len(b)
	}
	out := make(floatBuffer, 0, n)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

// pcm16Stereo encodes samples as 16-bit little-endian stereo, the native
// format of Ebitengine audio players.
func pcm16Stereo(buf floatBuffer, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		v *= gain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * math.MaxInt16)
		lo, hi := byte(s), byte(uint16(s)>>8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}

func engineSound(rng *rand.Rand) floatBuffer {
	n := durationToSamples(0.5)
	rumble := oscillator(waveNoise, 0, 0, n, rng)
	lowPass(rumble, 0.08)
	hum := oscillator(waveSaw, 55, 55, n, rng)
	lowPass(hum, 0.2)
	buf := mix(rumble, hum, 0.35)
	applyEnvelope(buf, 0.02, 0.05)
	return buf
}

func deathSound(rng *rand.Rand) floatBuffer {
	n := durationToSamples(0.9)
	blast := oscillator(waveNoise, 0, 0, n, rng)
	lowPass(blast, 0.25)
	applyEnvelope(blast, 0.005, 0.85)
	drop := oscillator(waveSquare, 220, 40, n, rng)
	applyEnvelope(drop, 0.005, 0.8)
	return mix(blast, drop, 0.3)
}

func successSound(rng *rand.Rand) floatBuffer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]floatBuffer, 0, len(notes))
	for i, f := range notes {
		sec := 0.12
		if i == len(notes)-1 {
			sec = 0.35
		}
		tone := oscillator(waveSine, f, f, durationToSamples(sec), rng)
		over := oscillator(waveSquare, f*2, f*2, len(tone), rng)
		tone = mix(tone, over, 0.1)
		applyEnvelope(tone, 0.005, sec*0.6)
		parts = append(parts, tone)
	}
	return concat(parts...)
}
