// Package device composes the link protocol into named operations against a
// navi2move: bulk downloads/uploads and configuration handling.
package device

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/codingforfun/navi2move/internal/link"
)

// ErrUnsupportedValue indicates a configuration setter rejected an
// out-of-range input. The in-memory snapshot is left unchanged.
var ErrUnsupportedValue = errors.New("unsupported value")

const (
	cmdGetDeviceConfig = "$POEM14,0"
	cmdSetDeviceConfig = "$POEM14,1"
	cmdGetRecordConfig = "$POEM06"
	cmdSetRecordConfig = "$POEM02"

	respDeviceConfig    = "$POEM103"
	respRecordConfig    = "$POEM101"
	respDeviceConfigAck = "$POEM200,14"
	respRecordConfigAck = "$PMST200,02"
)

// deviceSettings is the general-settings message, in wire field order.
type deviceSettings struct {
	Language      int
	TurnRadius    int
	LightDuration int
	AutoOff       int
	HomeTZ        int
	CurrentTZ     int
	Units         int
}

func (d *deviceSettings) fields() []int {
	return []int{d.Language, d.TurnRadius, d.LightDuration, d.AutoOff,
		d.HomeTZ, d.CurrentTZ, d.Units}
}

func (d *deviceSettings) setFields(v []int) {
	d.Language, d.TurnRadius, d.LightDuration, d.AutoOff = v[0], v[1], v[2], v[3]
	d.HomeTZ, d.CurrentTZ, d.Units = v[4], v[5], v[6]
}

// recordSettings is the recording-settings message, in wire field order.
// The reserved fields are echoed back unchanged when pushing.
type recordSettings struct {
	TimeInterval     int
	Reserved1        int // mostly 0, sometimes seen as 3600
	DistanceInterval int
	Reserved2        int
	SpeedInterval    int
	Reserved3        int
	Reserved4        int
}

func (r *recordSettings) fields() []int {
	return []int{r.TimeInterval, r.Reserved1, r.DistanceInterval, r.Reserved2,
		r.SpeedInterval, r.Reserved3, r.Reserved4}
}

func (r *recordSettings) setFields(v []int) {
	r.TimeInterval, r.Reserved1, r.DistanceInterval = v[0], v[1], v[2]
	r.Reserved2, r.SpeedInterval, r.Reserved3, r.Reserved4 = v[3], v[4], v[5], v[6]
}

const settingsFieldCount = 7

// Enumerated legal value sets.
var (
	languageCodes = map[string]int{
		"en": 0, "fr": 1, "de": 2, "nl": 3, "it": 4, "es": 5,
	}
	turnRadiusValues    = []int{5, 10, 20, 30, 50}
	lightDurationValues = []int{0, 10, 30, 60, 255}
	autoOffValues       = []int{0, 10, 30, 60}
	unitsCodes          = map[string]int{"km": 0, "mile": 1}
)

// Config is a snapshot of the device and recording settings. Fetch it, apply
// any number of validated setters, then push each changed message back.
type Config struct {
	ch *link.Channel

	device  deviceSettings
	rec     recordSettings
	diskUse float64
}

// FetchConfig reads both settings messages from the device.
func FetchConfig(ch *link.Channel) (*Config, error) {
	c := &Config{ch: ch}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh re-reads both settings messages, discarding local changes.
func (c *Config) Refresh() error {
	if err := c.refreshDevice(); err != nil {
		return err
	}
	return c.refreshRecord()
}

func (c *Config) refreshDevice() error {
	if !c.ch.Quiet {
		log.Printf("getting general device config")
	}
	if err := c.ch.SendCommand(cmdGetDeviceConfig); err != nil {
		return err
	}
	line, err := c.ch.Response(respDeviceConfig, true)
	if err != nil {
		return err
	}
	vals, _, err := parseConfigLine(line)
	if err != nil {
		return err
	}
	c.device.setFields(vals)
	return nil
}

func (c *Config) refreshRecord() error {
	if !c.ch.Quiet {
		log.Printf("getting recording config")
	}
	if err := c.ch.SendCommand(cmdGetRecordConfig); err != nil {
		return err
	}
	line, err := c.ch.Response(respRecordConfig, true)
	if err != nil {
		return err
	}
	vals, rest, err := parseConfigLine(line)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("recording config %q: missing disk use field: %w",
			line, link.ErrBadResponse)
	}
	diskUse, err := strconv.ParseFloat(rest[len(rest)-1], 64)
	if err != nil {
		return fmt.Errorf("recording config disk use %q: %w", rest[len(rest)-1],
			link.ErrBadResponse)
	}
	c.rec.setFields(vals)
	c.diskUse = diskUse
	return nil
}

// parseConfigLine splits a settings response into its first seven integer
// fields plus any remaining raw fields.
func parseConfigLine(line string) ([]int, []string, error) {
	body := strings.SplitN(strings.TrimSpace(line), "*", 2)[0]
	fields := strings.Split(body, ",")[1:]
	if len(fields) < settingsFieldCount {
		return nil, nil, fmt.Errorf("config line %q: want at least %d fields, got %d: %w",
			line, settingsFieldCount, len(fields), link.ErrBadResponse)
	}
	vals := make([]int, settingsFieldCount)
	for i := range vals {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, nil, fmt.Errorf("config field %d %q: %w", i, fields[i],
				link.ErrBadResponse)
		}
		vals[i] = v
	}
	return vals, fields[settingsFieldCount:], nil
}

// PushDevice re-serializes the whole general-settings snapshot and sends it,
// expecting an explicit acknowledgment message.
func (c *Config) PushDevice() error {
	msg := joinConfig(cmdSetDeviceConfig, c.device.fields())
	if !c.ch.Quiet {
		log.Printf("setting general device config with message %s", msg)
	}
	if err := c.ch.SendCommand(msg); err != nil {
		return err
	}
	_, err := c.ch.Response(respDeviceConfigAck, true)
	return err
}

// PushRecord re-serializes the whole recording-settings snapshot and sends
// it, expecting an explicit acknowledgment message.
func (c *Config) PushRecord() error {
	msg := joinConfig(cmdSetRecordConfig, c.rec.fields())
	if !c.ch.Quiet {
		log.Printf("setting record config with message %s", msg)
	}
	if err := c.ch.SendCommand(msg); err != nil {
		return err
	}
	_, err := c.ch.Response(respRecordConfigAck, true)
	return err
}

func joinConfig(cmd string, vals []int) string {
	parts := make([]string, 0, len(vals)+1)
	parts = append(parts, cmd)
	for _, v := range vals {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

// SetLanguage sets the interface language: en, fr, de, nl, it or es.
func (c *Config) SetLanguage(lang string) error {
	code, ok := languageCodes[strings.ToLower(lang)]
	if !ok {
		return fmt.Errorf("language %q: %w", lang, ErrUnsupportedValue)
	}
	c.device.Language = code
	return nil
}

// SetTurnRadius sets the routing turn radius in meters: 5, 10, 20, 30 or 50.
func (c *Config) SetTurnRadius(meters int) error {
	if !contains(turnRadiusValues, meters) {
		return fmt.Errorf("turn radius %d: %w", meters, ErrUnsupportedValue)
	}
	c.device.TurnRadius = meters
	return nil
}

// SetLightDuration sets the backlight duration in seconds: 10, 30, 60,
// 0 (always off) or 255 (always on).
func (c *Config) SetLightDuration(seconds int) error {
	if !contains(lightDurationValues, seconds) {
		return fmt.Errorf("light duration %d: %w", seconds, ErrUnsupportedValue)
	}
	c.device.LightDuration = seconds
	return nil
}

// SetAutoOff sets the idle minutes before automatic power-off: 10, 30, 60 or
// 0 to disable.
func (c *Config) SetAutoOff(minutes int) error {
	if !contains(autoOffValues, minutes) {
		return fmt.Errorf("auto-off %d: %w", minutes, ErrUnsupportedValue)
	}
	c.device.AutoOff = minutes
	return nil
}

// SetHomeTimezone sets the home timezone, in the range -12..12.
func (c *Config) SetHomeTimezone(tz int) error {
	if tz < -12 || tz > 12 {
		return fmt.Errorf("timezone %d: %w", tz, ErrUnsupportedValue)
	}
	c.device.HomeTZ = tz
	return nil
}

// SetCurrentTimezone sets the timezone used for time display, -12..12.
func (c *Config) SetCurrentTimezone(tz int) error {
	if tz < -12 || tz > 12 {
		return fmt.Errorf("timezone %d: %w", tz, ErrUnsupportedValue)
	}
	c.device.CurrentTZ = tz
	return nil
}

// SetUnits sets the display units: "km" (kph/km/m) or "mile" (mph/mile/ft).
func (c *Config) SetUnits(units string) error {
	code, ok := unitsCodes[strings.ToLower(units)]
	if !ok {
		return fmt.Errorf("units %q: %w", units, ErrUnsupportedValue)
	}
	c.device.Units = code
	return nil
}

// SetTimeInterval sets the maximum seconds between two recorded track
// points; 0 disables the condition.
func (c *Config) SetTimeInterval(seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("time interval %d: %w", seconds, ErrUnsupportedValue)
	}
	c.rec.TimeInterval = seconds
	return nil
}

// SetDistanceInterval sets the maximum meters between two recorded track
// points; 0 disables the condition.
func (c *Config) SetDistanceInterval(meters int) error {
	if meters < 0 {
		return fmt.Errorf("distance interval %d: %w", meters, ErrUnsupportedValue)
	}
	c.rec.DistanceInterval = meters
	return nil
}

// SetSpeedInterval sets the maximum speed change in m/s between two recorded
// track points; 0 disables the condition.
func (c *Config) SetSpeedInterval(speed int) error {
	if speed < 0 {
		return fmt.Errorf("speed interval %d: %w", speed, ErrUnsupportedValue)
	}
	c.rec.SpeedInterval = speed
	return nil
}

// DiskUse is the device's storage usage percentage.
func (c *Config) DiskUse() float64 { return c.diskUse }

// Item is one human-readable configuration entry.
type Item struct {
	Name  string
	Value string
}

// DeviceItems renders the general settings for display, sorted by name.
func (c *Config) DeviceItems() []Item {
	items := []Item{
		{"language", codeName(languageCodes, c.device.Language)},
		{"turnRadius", fmt.Sprintf("%d m", c.device.TurnRadius)},
		{"lightDuration", lightDurationName(c.device.LightDuration)},
		{"autoOff", autoOffName(c.device.AutoOff)},
		{"homeTz", timezoneName(c.device.HomeTZ)},
		{"currentTz", timezoneName(c.device.CurrentTZ)},
		{"units", codeName(unitsCodes, c.device.Units)},
	}
	sortItems(items)
	return items
}

// RecordItems renders the recording settings for display, sorted by name.
func (c *Config) RecordItems() []Item {
	items := []Item{
		{"timeInterval", fmt.Sprintf("%d s", c.rec.TimeInterval)},
		{"distanceInterval", fmt.Sprintf("%d m", c.rec.DistanceInterval)},
		{"speedInterval", fmt.Sprintf("%d m/s", c.rec.SpeedInterval)},
	}
	sortItems(items)
	return items
}

func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}

func codeName(codes map[string]int, code int) string {
	for name, c := range codes {
		if c == code {
			return name
		}
	}
	return strconv.Itoa(code)
}

func lightDurationName(v int) string {
	switch v {
	case 0:
		return "OFF"
	case 255:
		return "ON"
	default:
		return fmt.Sprintf("%d s", v)
	}
}

func autoOffName(v int) string {
	if v == 0 {
		return "OFF"
	}
	return fmt.Sprintf("%d min", v)
}

func timezoneName(tz int) string {
	return fmt.Sprintf("%+03d", tz)
}

func contains(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
