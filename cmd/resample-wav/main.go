// Command resample-wav resamples WAV audio files to a target sample rate.
//
// Usage:
//
//	resample-wav -rate 48000 input.wav output.wav
//	resample-wav -rate 16000 -channels 1 input.wav output.wav
//
// 16-bit and 24-bit PCM files are supported; the output keeps the input
// bit depth.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-audio/wav"

	pcm "github.com/tphakala/go-pcm"
)

const wavAudioFormatPCM = 1

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Uint("rate", uint(pcm.RateDAT), "Target sample rate in Hz (e.g. 16000, 44100, 48000)")
	channels := flag.Int("channels", 0, "Target channel count 1-8 (0 keeps the input layout)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("expected input and output paths")
	}
	inputPath, outputPath := args[0], args[1]

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	dec := wav.NewDecoder(in)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	start := time.Now()
	var out *wav.Encoder
	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = outFile.Close() }()

	switch int(dec.BitDepth) {
	case 24:
		src, err := pcm.AudioFromIntBuffer24(buf)
		if err != nil {
			return err
		}
		converted, err := convert[pcm.Ch24](src, uint32(*rate), *channels)
		if err != nil {
			return err
		}
		out = wav.NewEncoder(outFile, int(*rate), 24, converted.Channels(), wavAudioFormatPCM)
		if err := out.Write(pcm.ToIntBuffer24(converted)); err != nil {
			return fmt.Errorf("encode %s: %w", outputPath, err)
		}
	default:
		src, err := pcm.AudioFromIntBuffer(buf)
		if err != nil {
			return err
		}
		converted, err := convert[pcm.Ch16](src, uint32(*rate), *channels)
		if err != nil {
			return err
		}
		out = wav.NewEncoder(outFile, int(*rate), 16, converted.Channels(), wavAudioFormatPCM)
		if err := out.Write(pcm.ToIntBuffer(converted)); err != nil {
			return fmt.Errorf("encode %s: %w", outputPath, err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", outputPath, err)
	}

	if *verbose {
		log.Printf("%s: %d Hz, %d channels -> %s: %d Hz in %v",
			inputPath, dec.SampleRate, dec.NumChans, outputPath, *rate, time.Since(start))
	}
	return nil
}

func convert[C pcm.Channel](src *pcm.Audio[C], rate uint32, channels int) (*pcm.Audio[C], error) {
	if channels > 0 && channels != src.Channels() {
		src = pcm.RemixAudio(src, channels)
	}
	return pcm.ResampleAudio[C](src, rate)
}
