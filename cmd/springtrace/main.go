// Command springtrace prints the positions visited by the chase camera spring
// while it converges from one point to another with a fixed timestep.
//
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/db47h/chasecam/config"
	"github.com/db47h/chasecam/spring"
)

func main() {
	var (
		p          = spring.DefaultParams
		configPath = flag.String("config", "", "read spring parameters from YAML `file`")
		dt         = flag.Float64("dt", 1.0/60, "timestep in seconds")
		from       = flag.String("from", "0,0,0", "start `position`")
		to         = flag.String("to", "0,2,0", "target `position`")
		steps      = flag.Int("steps", 1000, "maximum number of steps")
		every      = flag.Int("every", 1, "print every `n`th step")
	)
	params := map[string]*float32{
		"k":        &p.Stiffness,
		"damping":  &p.DampingOffset,
		"deadzone": &p.DeadZone,
	}
	values := map[string]*float64{
		"k":        flag.Float64("k", float64(p.Stiffness), "stiffness"),
		"damping":  flag.Float64("damping", float64(p.DampingOffset), "damping offset"),
		"deadzone": flag.Float64("deadzone", float64(p.DeadZone), "dead zone radius"),
	}
	flag.Parse()

	log.SetFlags(0)
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		p = cfg.SpringParams()
	}
	// explicit flags override the configuration file
	flag.Visit(func(f *flag.Flag) {
		if v, ok := values[f.Name]; ok {
			*params[f.Name] = float32(*v)
		}
	})

	f, err := spring.NewFollower(p)
	if err != nil {
		log.Fatal(err)
	}
	start, err := parseVec(*from)
	if err != nil {
		log.Fatal(err)
	}
	target, err := parseVec(*to)
	if err != nil {
		log.Fatal(err)
	}

	s := trace(f, start, target, float32(*dt), *steps)
	fmt.Fprintln(os.Stdout, render(s, *every, p.DeadZone))
	last := s[len(s)-1]
	fmt.Fprintf(os.Stdout, "%d steps, %.4fs, final distance %g (overshoot-free above %g)\n",
		last.step, float64(last.step)**dt, last.dist, p.OvershootFreeDistance(float32(*dt)))
}
