package blog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type RouteKind int

const (
	RoutePage RouteKind = iota
	RouteEntry
	RouteFeed
)

var (
	yearRe = regexp.MustCompile(`^\d{4}$`)
	twoRe  = regexp.MustCompile(`^\d{2}$`)
	slugRe = regexp.MustCompile(`^[-\p{L}\p{N}_]+$`)
)

const feedSegment = "feed"

// Route is a request path classified against the permalink scheme.
type Route struct {
	Kind RouteKind
	// BlogPath is the blog path of entry and feed routes, empty for a root blog.
	BlogPath string
	// Path is the page path relative to the root for page routes.
	Path string

	Year, Month, Day int
	Slug             string
}

// ParseRoute classifies path, which must live under prefix. It is the inverse
// of the RoutingContext URL builders.
func ParseRoute(path, prefix string) (Route, bool) {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix != "/" {
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return Route{}, false
		}
		path = strings.TrimPrefix(path, prefix)
	}

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return Route{Kind: RoutePage}, true
	}

	segs := strings.Split(trimmed, "/")
	for _, s := range segs {
		if s == "" || s == "." || s == ".." {
			return Route{}, false
		}
	}

	n := len(segs)
	// Entries take precedence over feeds: /2024/03/05/feed/ is an entry.
	if n >= 4 && yearRe.MatchString(segs[n-4]) && twoRe.MatchString(segs[n-3]) &&
		twoRe.MatchString(segs[n-2]) && slugRe.MatchString(segs[n-1]) {
		return Route{
			Kind:     RouteEntry,
			BlogPath: strings.Join(segs[:n-4], "/"),
			Year:     atoi(segs[n-4]),
			Month:    atoi(segs[n-3]),
			Day:      atoi(segs[n-2]),
			Slug:     segs[n-1],
		}, true
	}

	if segs[n-1] == feedSegment {
		return Route{Kind: RouteFeed, BlogPath: strings.Join(segs[:n-1], "/")}, true
	}

	return Route{Kind: RoutePage, Path: trimmed}, true
}

// DayWindow returns the calendar day of an entry route in loc as [from, to).
// ok is false for impossible dates such as February 30.
func (r Route) DayWindow(loc *time.Location) (from, to time.Time, ok bool) {
	return dayWindow(r.Year, r.Month, r.Day, loc)
}

func dayWindow(year, month, day int, loc *time.Location) (time.Time, time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	from := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if from.Year() != year || int(from.Month()) != month || from.Day() != day {
		return time.Time{}, time.Time{}, false
	}

	return from, from.AddDate(0, 0, 1), true
}

type SubRouteKind string

const (
	SubIndex    SubRouteKind = ""
	SubTag      SubRouteKind = "tag"
	SubCategory SubRouteKind = "category"
	SubAuthor   SubRouteKind = "author"
	SubSearch   SubRouteKind = "search"
	SubDate     SubRouteKind = "date"
)

// SubRoute is the part of a blog page path after the blog itself.
type SubRoute struct {
	Kind SubRouteKind
	Term string

	Year, Month, Day int
}

// ParseSubRoute parses the remainder of a path below a blog page.
func ParseSubRoute(rest string) (SubRoute, bool) {
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return SubRoute{Kind: SubIndex}, true
	}

	segs := strings.Split(rest, "/")
	switch segs[0] {
	case string(SubTag), string(SubCategory), string(SubAuthor):
		if len(segs) != 2 || segs[1] == "" {
			return SubRoute{}, false
		}
		return SubRoute{Kind: SubRouteKind(segs[0]), Term: segs[1]}, true
	case string(SubSearch):
		if len(segs) != 1 {
			return SubRoute{}, false
		}
		return SubRoute{Kind: SubSearch}, true
	}

	if len(segs) > 3 || !yearRe.MatchString(segs[0]) {
		return SubRoute{}, false
	}

	sub := SubRoute{Kind: SubDate, Year: atoi(segs[0])}
	if len(segs) > 1 {
		if !twoRe.MatchString(segs[1]) {
			return SubRoute{}, false
		}
		sub.Month = atoi(segs[1])
		if sub.Month < 1 || sub.Month > 12 {
			return SubRoute{}, false
		}
	}
	if len(segs) > 2 {
		if !twoRe.MatchString(segs[2]) {
			return SubRoute{}, false
		}
		sub.Day = atoi(segs[2])
		if _, _, ok := dayWindow(sub.Year, sub.Month, sub.Day, time.UTC); !ok {
			return SubRoute{}, false
		}
	}
	sub.Term = strings.Join(segs, "/")

	return sub, true
}

// Window returns the [from, to) range of a date sub-route in loc.
func (s SubRoute) Window(loc *time.Location) (from, to time.Time) {
	if loc == nil {
		loc = time.UTC
	}

	switch {
	case s.Day > 0:
		from = time.Date(s.Year, time.Month(s.Month), s.Day, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 0, 1)
	case s.Month > 0:
		from = time.Date(s.Year, time.Month(s.Month), 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, 0)
	default:
		from = time.Date(s.Year, time.January, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0)
	}
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
