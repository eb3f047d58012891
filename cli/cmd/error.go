package cmd

import "github.com/ardnew/gendotenv/pkg"

var (
	ErrReadStdin   = pkg.NewError("read standard input")
	ErrOpenInput   = pkg.NewError("open input file")
	ErrWriteOutput = pkg.NewError("write output")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
)
