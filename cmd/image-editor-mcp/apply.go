package main

import (
	"errors"
	"flag"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
)

// runApply edits one file without the server: load, adjust, render, save.
func runApply(args []string, log logrus.FieldLogger) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	p := editor.DefaultParams()
	in := fs.String("in", "", "source image")
	out := fs.String("out", "", "destination image (.png, .jpg, .jpeg, .webp)")
	fs.Float64Var(&p.Brightness, "brightness", p.Brightness, "brightness factor")
	fs.Float64Var(&p.Contrast, "contrast", p.Contrast, "contrast factor")
	fs.Float64Var(&p.Saturation, "saturation", p.Saturation, "saturation factor")
	fs.IntVar(&p.Rotation, "rotate", p.Rotation, "rotation in degrees, counter-clockwise")
	fs.Float64Var(&p.CropLeft, "crop-left", p.CropLeft, "fraction cropped from the left")
	fs.Float64Var(&p.CropTop, "crop-top", p.CropTop, "fraction cropped from the top")
	fs.Float64Var(&p.CropRight, "crop-right", p.CropRight, "fraction cropped from the right")
	fs.Float64Var(&p.CropBottom, "crop-bottom", p.CropBottom, "fraction cropped from the bottom")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("both -in and -out are required")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	ed := editor.New(log)
	if err := ed.Load(*in); err != nil {
		return err
	}
	ed.SetParams(p)
	ed.Render()
	return ed.Save(*out)
}
