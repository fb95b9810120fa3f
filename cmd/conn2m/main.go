// Command conn2m downloads tracks, POIs and routes from an o-synce
// navi2move GPS device, uploads POIs and routes to it, and reads or writes
// its configuration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/codingforfun/navi2move/internal/config"
	"github.com/codingforfun/navi2move/internal/device"
	"github.com/codingforfun/navi2move/internal/gpx"
	"github.com/codingforfun/navi2move/internal/serial"
)

var modes = map[string]string{
	"get-tracks":   "download tracks from the device",
	"get-pois":     "download pois from the device",
	"get-route":    "download the route from the device",
	"send-pois":    "send pois to the device",
	"send-route":   "send a route to the device",
	"print-config": "print the device configuration",
	"set-config":   "set device configuration items",
}

type setConfigFlags struct {
	language         string
	units            string
	lightDuration    string
	autoOff          int
	turnRadius       int
	homeTimezone     int
	currentTimezone  int
	timeInterval     int
	distanceInterval int
	speedInterval    int
}

const unsetInt = -1 << 30

func main() {
	var (
		configPath   string
		port         string
		outputPrefix string
		noDatePrefix bool
		gpxFile      string
		quiet        bool
		sc           setConfigFlags
	)
	flag.StringVar(&configPath, "config", "", "path to YAML config")
	flag.StringVar(&port, "port", "", "serial interface, e.g. /dev/ttyUSB0 (default: scan for the device)")
	flag.StringVar(&outputPrefix, "output-prefix", "", "prefix for output gpx files")
	flag.BoolVar(&noDatePrefix, "no-date-prefixes", false, "do not prefix output filenames with the recording date")
	flag.StringVar(&gpxFile, "gpx", "", "gpx file to send in send-pois/send-route mode")
	flag.BoolVar(&quiet, "quiet", false, "suppress protocol traffic echo")

	flag.StringVar(&sc.language, "language", "", "device language: en, fr, de, nl, it, es")
	flag.StringVar(&sc.units, "units", "", "display units: km or mile")
	flag.StringVar(&sc.lightDuration, "light-duration", "", "backlight seconds: 10, 30, 60, off or on")
	flag.IntVar(&sc.autoOff, "auto-off", unsetInt, "idle minutes before power-off: 10, 30, 60 or 0 to disable")
	flag.IntVar(&sc.turnRadius, "turn-radius", unsetInt, "routing turn radius in meters: 5, 10, 20, 30 or 50")
	flag.IntVar(&sc.homeTimezone, "home-timezone", unsetInt, "home timezone, -12..12")
	flag.IntVar(&sc.currentTimezone, "current-timezone", unsetInt, "current timezone, -12..12")
	flag.IntVar(&sc.timeInterval, "time-interval", unsetInt, "max seconds between track points, 0 to disable")
	flag.IntVar(&sc.distanceInterval, "distance-interval", unsetInt, "max meters between track points, 0 to disable")
	flag.IntVar(&sc.speedInterval, "speed-interval", unsetInt, "max speed change in m/s between track points, 0 to disable")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "please specify exactly one mode")
		usage()
		os.Exit(1)
	}
	mode := flag.Arg(0)
	if _, ok := modes[mode]; !ok {
		fmt.Fprintf(os.Stderr, "no such mode: %s\n", mode)
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if port != "" {
		cfg.Port = port
	}
	if quiet {
		cfg.Quiet = true
	}
	if noDatePrefix {
		f := false
		cfg.DatePrefixes = &f
	}
	if outputPrefix == "" {
		outputPrefix = defaultPrefix(mode)
	}

	path := cfg.Port
	if path == "auto" {
		path, err = serial.Discover()
		if err != nil {
			log.Fatalf("device scan failed: %v", err)
		}
		log.Printf("selected %s as device interface port", path)
	}

	p, err := serial.Open(path, 9600, cfg.ReadTimeout)
	if err != nil {
		log.Fatalf("open %s failed: %v", path, err)
	}
	defer p.Close()

	s, err := device.NewSession(p, device.Options{
		Quiet:      cfg.Quiet,
		SplitGap:   cfg.SplitGap,
		AckTimeout: cfg.AckTimeout,
	})
	if err != nil {
		log.Fatalf("session setup failed: %v", err)
	}

	switch mode {
	case "get-tracks":
		err = getTracks(s, outputPrefix, cfg.UseDatePrefixes())
	case "get-pois":
		err = getPois(s, outputPrefix, cfg.UseDatePrefixes())
	case "get-route":
		err = getRoute(s, outputPrefix)
	case "send-pois":
		err = sendPois(s, gpxFile)
	case "send-route":
		err = sendRoute(s, gpxFile)
	case "print-config":
		err = printConfig(s)
	case "set-config":
		err = setConfig(s, &sc)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", mode, err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [options] <mode>\n\nmodes:\n", os.Args[0])
	names := make([]string, 0, len(modes))
	for m := range modes {
		names = append(names, m)
	}
	sort.Strings(names)
	for _, m := range names {
		fmt.Fprintf(os.Stderr, "  %-13s %s\n", m, modes[m])
	}
	fmt.Fprintln(os.Stderr, "\noptions:")
	flag.PrintDefaults()
}

func defaultPrefix(mode string) string {
	switch mode {
	case "get-tracks":
		return "track"
	case "get-pois":
		return "pois"
	default:
		return "route"
	}
}

// parseLightDuration maps the backlight option to its wire value: "on" and
// "off" are aliases for the always-on and always-off codes.
func parseLightDuration(s string) (int, error) {
	switch strings.ToLower(s) {
	case "on":
		return 255, nil
	case "off":
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("light duration %q: not a number, \"on\" or \"off\"", s)
	}
	return n, nil
}

// datePrefix renders the recording date span of a download the way output
// files are named: "yymmdd" or "yymmdd-yymmdd".
func datePrefix(first, last time.Time) string {
	const layout = "060102"
	start := first.UTC().Format(layout)
	end := last.UTC().Format(layout)
	if start == end {
		return start
	}
	return start + "-" + end
}

func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func getTracks(s *device.Session, prefix string, datePrefixes bool) error {
	tracks, err := s.GetTracks()
	if err != nil {
		return err
	}
	for i, t := range tracks {
		name := fmt.Sprintf("%s%03d.gpx", prefix, i)
		if datePrefixes {
			name = datePrefix(t.Points[0].Time, t.Points[len(t.Points)-1].Time) + "_" + name
		}
		log.Printf("writing track file %s", name)
		if err := writeFile(name, func(f *os.File) error {
			return gpx.WriteTrack(f, t)
		}); err != nil {
			return err
		}
	}
	return nil
}

func getPois(s *device.Session, prefix string, datePrefixes bool) error {
	pois, err := s.GetPois()
	if err != nil {
		return err
	}
	name := prefix + ".gpx"
	if datePrefixes && len(pois) > 0 {
		name = datePrefix(pois[0].Time, pois[len(pois)-1].Time) + "_" + name
	}
	log.Printf("writing poi file %s", name)
	return writeFile(name, func(f *os.File) error {
		return gpx.WritePois(f, pois)
	})
}

func getRoute(s *device.Session, prefix string) error {
	route, err := s.GetRoute()
	if err != nil {
		return err
	}
	name := prefix + ".gpx"
	log.Printf("writing route file %s", name)
	return writeFile(name, func(f *os.File) error {
		return gpx.WriteRoute(f, route)
	})
}

func sendPois(s *device.Session, gpxFile string) error {
	if gpxFile == "" {
		return fmt.Errorf("no gpx file specified, use the -gpx option")
	}
	pois, err := gpx.ReadPois(gpxFile)
	if err != nil {
		return err
	}
	log.Printf("sending pois from gpx file %s to the device", gpxFile)
	return s.SendPois(pois)
}

func sendRoute(s *device.Session, gpxFile string) error {
	if gpxFile == "" {
		return fmt.Errorf("no gpx file specified, use the -gpx option")
	}
	route, err := gpx.ReadRoute(gpxFile)
	if err != nil {
		return err
	}
	log.Printf("sending route from gpx file %s to the device", gpxFile)
	return s.SendRoute(route)
}

func printConfig(s *device.Session) error {
	cfg, err := s.FetchConfig()
	if err != nil {
		return err
	}
	printItems(cfg)
	return nil
}

func printItems(cfg *device.Config) {
	fmt.Println("general device configuration:")
	for _, it := range cfg.DeviceItems() {
		fmt.Printf("\t%-16s: %s\n", it.Name, it.Value)
	}
	fmt.Println("track recording configuration:")
	for _, it := range cfg.RecordItems() {
		fmt.Printf("\t%-16s: %s\n", it.Name, it.Value)
	}
	fmt.Printf("disk usage: %.2f %%\n", cfg.DiskUse())
}

// setConfig batches all requested setters, then pushes each changed message
// group once.
func setConfig(s *device.Session, sc *setConfigFlags) error {
	cfg, err := s.FetchConfig()
	if err != nil {
		return err
	}

	deviceChanged := false
	recordChanged := false
	apply := func(changed *bool, set func() error) error {
		if err := set(); err != nil {
			return err
		}
		*changed = true
		return nil
	}

	if sc.language != "" {
		if err := apply(&deviceChanged, func() error { return cfg.SetLanguage(sc.language) }); err != nil {
			return err
		}
	}
	if sc.units != "" {
		if err := apply(&deviceChanged, func() error { return cfg.SetUnits(sc.units) }); err != nil {
			return err
		}
	}
	if sc.lightDuration != "" {
		seconds, err := parseLightDuration(sc.lightDuration)
		if err != nil {
			return err
		}
		if err := apply(&deviceChanged, func() error { return cfg.SetLightDuration(seconds) }); err != nil {
			return err
		}
	}
	if sc.autoOff != unsetInt {
		if err := apply(&deviceChanged, func() error { return cfg.SetAutoOff(sc.autoOff) }); err != nil {
			return err
		}
	}
	if sc.turnRadius != unsetInt {
		if err := apply(&deviceChanged, func() error { return cfg.SetTurnRadius(sc.turnRadius) }); err != nil {
			return err
		}
	}
	if sc.homeTimezone != unsetInt {
		if err := apply(&deviceChanged, func() error { return cfg.SetHomeTimezone(sc.homeTimezone) }); err != nil {
			return err
		}
	}
	if sc.currentTimezone != unsetInt {
		if err := apply(&deviceChanged, func() error { return cfg.SetCurrentTimezone(sc.currentTimezone) }); err != nil {
			return err
		}
	}
	if sc.timeInterval != unsetInt {
		if err := apply(&recordChanged, func() error { return cfg.SetTimeInterval(sc.timeInterval) }); err != nil {
			return err
		}
	}
	if sc.distanceInterval != unsetInt {
		if err := apply(&recordChanged, func() error { return cfg.SetDistanceInterval(sc.distanceInterval) }); err != nil {
			return err
		}
	}
	if sc.speedInterval != unsetInt {
		if err := apply(&recordChanged, func() error { return cfg.SetSpeedInterval(sc.speedInterval) }); err != nil {
			return err
		}
	}

	if deviceChanged {
		if err := cfg.PushDevice(); err != nil {
			return err
		}
	}
	if recordChanged {
		if err := cfg.PushRecord(); err != nil {
			return err
		}
	}
	if err := cfg.Refresh(); err != nil {
		return err
	}
	printItems(cfg)
	return nil
}
