package main

import (
	"github.com/cellux/spectroview/zoom"
)

type Point = zoom.Point
type Size = zoom.Size
type Rect = zoom.Rect
