package synth

import "math"

// genAdvance: two-note rising FM chime.
func genAdvance() []byte {
	notes := []float64{523.25, 783.99}
	step := samples(0.07)
	n := step*len(notes) + samples(0.18)
	mix := make([]float64, n)
	for k, freq := range notes {
		start := k * step
		dur := n - start
		for j := range dur {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.5, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 2.0, 3.0*env) * env * 0.3
		}
	}
	return render(mix)
}

// genRefused: short low buzz for an ignored advance.
func genRefused() []byte {
	n := samples(0.08)
	mix := make([]float64, n)
	for i := range n {
		t := float64(i) / SampleRate
		env := adsr(float64(i)/float64(n), 0.01, 0.4, 0.3, 0.3)
		mix[i] = fm(t, 110, 1.5, 2.5) * env * 0.25
	}
	return render(mix)
}

// genProtest: filtered noise burst with a falling tone.
func genProtest(seed uint64) []byte {
	n := samples(0.06)
	mix := make([]float64, n)
	lp := 0.0
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.6, 0.0, 0.2)
		lp += (lcg(&seed) - lp) * 0.25
		mix[i] = (lp*0.5 + math.Sin(2*math.Pi*(420-200*p)*t)*0.3) * env * 0.4
	}
	return render(mix)
}

// genStrike: bright metallic FM ping.
func genStrike() []byte {
	n := samples(0.05)
	mix := make([]float64, n)
	for i := range n {
		t := float64(i) / SampleRate
		env := adsr(float64(i)/float64(n), 0.002, 0.6, 0.0, 0.2)
		mix[i] = fm(t, 1320, 3.5, 4.0*env) * env * 0.22
	}
	return render(mix)
}

// genCollapse: sub drop under a long noise tail.
func genCollapse(seed uint64) []byte {
	n := samples(0.9)
	mix := make([]float64, n)
	lp := 0.0
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.3, 0.35, 0.5)
		freq := 80 * math.Exp(-p*1.6)
		sub := math.Sin(2*math.Pi*freq*t) * 0.6
		lp += (lcg(&seed) - lp) * (0.12 - 0.1*p)
		mix[i] = (sub + lp*0.7) * env
	}
	return render(mix)
}

// genReplicate: quick upward blip, pitched like a cell dividing.
func genReplicate() []byte {
	n := samples(0.04)
	mix := make([]float64, n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.3)
		mix[i] = math.Sin(2*math.Pi*(600+900*p)*t) * env * 0.2
	}
	return render(mix)
}

// genEnd: slow minor chord, staggered entries.
func genEnd() []byte {
	n := samples(2.4)
	notes := []struct{ freq, onset float64 }{
		{220.00, 0.00},
		{261.63, 0.25},
		{329.63, 0.50},
		{440.00, 0.75},
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := samples(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			env := adsr(float64(i-start)/float64(n-start), 0.05, 0.3, 0.5, 0.5)
			mix[i] += fm(t, note.freq, 1.0, 1.2*env) * env * 0.18
		}
	}
	return render(mix)
}

// genReset: descending sweep.
func genReset() []byte {
	n := samples(0.25)
	mix := make([]float64, n)
	phase := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		phase += 2 * math.Pi * (900 - 700*p) / SampleRate
		env := adsr(p, 0.01, 0.4, 0.3, 0.4)
		mix[i] = math.Sin(phase) * env * 0.25
	}
	return render(mix)
}
