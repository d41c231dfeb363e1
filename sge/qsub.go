package sge

// Submit pipes a submission script into qsub and returns whatever qsub
// printed. The script is not inspected or modified here.
func Submit(r Runner, script []byte) (string, error) {
	out, err := r.Pipe(script, "qsub")
	return string(out), err
}
