package main

/*
femap2vtk converts a FEMAP Neutral file mesh plus its per-channel result
files into a VTK collection: one multi-block document per output set,
split into per-property sub-blocks, indexed by a .pvd file.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/emsolution/femap2vtk/mesh"
	"github.com/emsolution/femap2vtk/pipeline"
)

var (
	outDir      = flag.String("out", ".", "Output directory")
	outName     = flag.String("name", "femap2vtk", "Output collection/run name")
	force2D     = flag.Bool("force-2d", false, "Reduce 3D brick/wedge topologies to their 2D analogs")
	ascii       = flag.Bool("ascii", false, "Write inline ASCII DataArrays instead of appended binary")
	compress    = flag.Bool("compress", false, "zlib-compress appended binary payloads (ignored with -ascii)")
	parallelism = flag.Int("parallelism", 0, "Maximum simultaneous channel-parse and step-write jobs; 0 = one per channel / one per step")

	displacement = flag.String("displacement", "", "Displacement channel result file")
	magnetic     = flag.String("magnetic", "", "Magnetic channel result file")
	current      = flag.String("current", "", "Current channel result file")
	force        = flag.String("force", "", "Nodal force channel result file")
	lorentzForce = flag.String("lorentz-force", "", "Lorentz force channel result file")
	heat         = flag.String("heat", "", "Heat channel result file")
)

func femap2vtkUsage() {
	fmt.Printf("Usage: %s [OPTIONS] mesh.neu\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = femap2vtkUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("exactly one positional argument (mesh.neu) required; got %d", flag.NArg())
	}

	channels := map[mesh.ChannelKind]string{}
	addChannel(channels, mesh.Displacement, *displacement)
	addChannel(channels, mesh.Magnetic, *magnetic)
	addChannel(channels, mesh.Current, *current)
	addChannel(channels, mesh.Force, *force)
	addChannel(channels, mesh.LorentzForce, *lorentzForce)
	addChannel(channels, mesh.Heat, *heat)

	cfg := pipeline.Config{
		OutputDir:   *outDir,
		OutputName:  *outName,
		Mesh:        flag.Arg(0),
		Channels:    channels,
		Force2D:     *force2D,
		ASCII:       *ascii,
		Compress:    *compress,
		Parallelism: *parallelism,
	}

	ctx := vcontext.Background()
	if err := pipeline.Run(ctx, cfg); err != nil {
		log.Panicf("%v", err)
	}
	log.Debug.Printf("exiting")
}

func addChannel(channels map[mesh.ChannelKind]string, kind mesh.ChannelKind, path string) {
	if path != "" {
		channels[kind] = path
	}
}
