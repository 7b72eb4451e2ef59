package main

import "embed"

// Built-in engine calibration and demo address map.
//
//go:embed data/animseq.yaml
var dataFS embed.FS
