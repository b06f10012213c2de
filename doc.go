/*
Package triangler converts images to computer generated art using delaunay triangulation.

Mesh vertices are picked where the image is visually busy. Three weight map
algorithms are available (Gradient, Entropy, Sobel) together with two point
sampling strategies (PoissonDisk, Threshold); any combination plugs into the
same extraction pipeline.

The package provides a command line utility supporting various customization
options. Check the supported commands by typing:

	$ triangler --help

Example to generate a triangulated image:

	package main

	import (
		"log"

		"github.com/000o0/triangler"
		"github.com/disintegration/imaging"
	)

	func main() {
		src, err := imaging.Open("input.jpg")
		if err != nil {
			log.Fatal(err)
		}

		p := &triangler.Processor{
			Points: 2500,
			Edge:   triangler.Sobel,
			Sample: triangler.Threshold,
		}

		res, _, _, err := p.Process(src)
		if err != nil {
			log.Fatal(err)
		}
		if err := imaging.Save(res, "output.png"); err != nil {
			log.Fatal(err)
		}
	}

The weight map algorithms are also exported directly (GradientWeights,
EntropyWeights, SobelWeights) for callers that only need the salience field.
*/
package triangler
