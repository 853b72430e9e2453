// Package session runs the interactive artist lookup.
//
// A Session acquires a token once, asks for an artist until one resolves,
// offers three views of that artist and prints the chosen one. Input and
// output are plain line-oriented streams so the whole flow can be driven
// from tests.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jfmyers9/discog/internal/catalog"
	"github.com/jfmyers9/discog/internal/music"
	"github.com/jfmyers9/discog/pkg/spotify"
	"github.com/rs/zerolog"
)

// ErrInputClosed is returned when input ends while a prompt is waiting
var ErrInputClosed = errors.New("input closed before the lookup finished")

// Authenticator acquires the bearer token used for the whole run
type Authenticator interface {
	AcquireToken(ctx context.Context) (*spotify.Token, error)
}

// ArtistResolver maps free text to an artist identity
type ArtistResolver interface {
	ResolveArtist(ctx context.Context, query string) (music.Artist, error)
}

// CatalogQueries provides the three per-artist views
type CatalogQueries interface {
	TopTracks(ctx context.Context, artistID string) ([]music.Track, error)
	Albums(ctx context.Context, artistID string) ([]music.Album, error)
	FindTrack(ctx context.Context, artist music.Artist, trackQuery string) (music.Track, error)
}

// Options holds optional session behaviour
type Options struct {
	OutputWidth int            // Display width for listed names, 0 disables truncation
	Player      music.Player   // Starts DoneSound after results, may be nil
	DoneSound   string         // Path to a local sound file, empty disables playback
	Logger      zerolog.Logger // Diagnostics; the zero value logs nothing useful
}

// Session drives one interactive lookup
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	auth     Authenticator
	resolver ArtistResolver
	queries  CatalogQueries
	opts     Options
	styles   styles
	logger   zerolog.Logger
}

// state is a step of the interactive lookup
type state int

const (
	stateAwaitArtist state = iota // Waiting for an artist name
	stateResolving                // Resolving the entered name
	stateAwaitChoice              // Waiting for a menu choice
	stateDispatch                 // Running the chosen view
	stateDone                     // Finished
)

// String returns a human-readable representation of the state
func (s state) String() string {
	switch s {
	case stateAwaitArtist:
		return "await_artist"
	case stateResolving:
		return "resolving"
	case stateAwaitChoice:
		return "await_choice"
	case stateDispatch:
		return "dispatch"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// choice is a menu selection
type choice int

const (
	choiceTopTracks choice = 1
	choiceAlbums    choice = 2
	choiceFindTrack choice = 3
)

// New creates a session reading answers from in and writing to out
func New(in io.Reader, out io.Writer, auth Authenticator, resolver ArtistResolver, queries CatalogQueries, opts Options) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		auth:     auth,
		resolver: resolver,
		queries:  queries,
		opts:     opts,
		styles:   newStyles(out),
		logger:   opts.Logger.With().Str("component", "session").Logger(),
	}
}

// Run executes the lookup until the chosen view has been printed.
//
// Authentication failures and closed input are returned. Catalog request
// and response failures are reported on the output and end the run with a
// nil error. A search that matches nothing always leads back to a prompt.
func (s *Session) Run(ctx context.Context) error {
	if _, err := s.auth.AcquireToken(ctx); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	var (
		current = stateAwaitArtist
		query   string
		artist  music.Artist
		picked  choice
	)

	for current != stateDone {
		s.logger.Debug().Stringer("state", current).Msg("Entering state")

		switch current {
		case stateAwaitArtist:
			line, err := s.prompt("Search for an artist: ")
			if err != nil {
				return err
			}
			s.println()
			query = line
			current = stateResolving

		case stateResolving:
			resolved, err := s.resolver.ResolveArtist(ctx, query)
			switch {
			case err == nil:
				artist = resolved
				s.printMenu(artist)
				current = stateAwaitChoice
			case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrEmptyQuery):
				s.println(s.styles.notice.Render("No artists with this name..."))
				current = stateAwaitArtist
			default:
				return s.fail(ctx, err)
			}

		case stateAwaitChoice:
			line, err := s.prompt("Choice: ")
			if err != nil {
				return err
			}
			c, ok := parseChoice(line)
			if !ok {
				s.println(s.styles.notice.Render("Please enter 1, 2 or 3."))
				continue
			}
			picked = c
			current = stateDispatch

		case stateDispatch:
			if err := s.dispatch(ctx, artist, picked); err != nil {
				if errors.Is(err, ErrInputClosed) {
					return err
				}
				return s.fail(ctx, err)
			}
			s.playDoneSound()
			current = stateDone
		}
	}

	return nil
}

// dispatch runs the selected view
func (s *Session) dispatch(ctx context.Context, artist music.Artist, c choice) error {
	switch c {
	case choiceTopTracks:
		return s.showTopTracks(ctx, artist)
	case choiceAlbums:
		return s.showAlbums(ctx, artist)
	case choiceFindTrack:
		return s.findTrack(ctx, artist)
	default:
		return fmt.Errorf("unknown choice %d", c)
	}
}

func (s *Session) showTopTracks(ctx context.Context, artist music.Artist) error {
	tracks, err := s.queries.TopTracks(ctx, artist.ID)
	if err != nil {
		return err
	}

	s.println(s.styles.heading.Render(fmt.Sprintf("Top %d songs:", len(tracks))))
	s.println()
	if len(tracks) == 0 {
		s.println("No top tracks found.")
		return nil
	}
	for i, t := range tracks {
		s.println(fmt.Sprintf("%d %s", i+1, fitWidth(t.Name, s.opts.OutputWidth)))
	}
	return nil
}

func (s *Session) showAlbums(ctx context.Context, artist music.Artist) error {
	albums, err := s.queries.Albums(ctx, artist.ID)
	if err != nil {
		return err
	}

	s.println()
	s.println(s.styles.heading.Render("Albums:"))
	if len(albums) == 0 {
		s.println("No albums found.")
		return nil
	}
	for i, a := range albums {
		s.println(fmt.Sprintf("%d. %s", i+1, fitWidth(a.Name, s.opts.OutputWidth)))
	}
	return nil
}

// findTrack prompts for track names until one matches
func (s *Session) findTrack(ctx context.Context, artist music.Artist) error {
	for {
		line, err := s.prompt(fmt.Sprintf("Give a valid song name from %s: ", artist.Name))
		if err != nil {
			return err
		}

		track, err := s.queries.FindTrack(ctx, artist, line)
		if errors.Is(err, catalog.ErrNotFound) || errors.Is(err, catalog.ErrEmptyQuery) {
			s.println(s.styles.notice.Render("No tracks/songs with this name..."))
			continue
		}
		if err != nil {
			return err
		}

		s.println(fmt.Sprintf("Track Name: %s", track.Name))
		s.println(fmt.Sprintf("Track Length: %s", music.FormatDuration(track.Duration)))
		if track.URL != "" {
			s.println(fmt.Sprintf("Track URL: %s", track.URL))
		}
		return nil
	}
}

func (s *Session) printMenu(artist music.Artist) {
	s.println(artist.Name)
	s.println(s.styles.heading.Render(fmt.Sprintf("Now looking at %s's discography...", artist.Name)))
	s.println(fmt.Sprintf("1: Get %s's 10 songs", artist.Name))
	s.println(fmt.Sprintf("2: Get %s's albums", artist.Name))
	s.println(fmt.Sprintf("3: Search for %s's specific song", artist.Name))
}

// fail reports a catalog failure to the user and ends the run.
// Anything that is not a catalog failure is returned unchanged.
func (s *Session) fail(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var reqErr *spotify.RequestError
	var respErr *spotify.ResponseError
	if !errors.As(err, &reqErr) && !errors.As(err, &respErr) {
		return err
	}

	s.logger.Error().Err(err).Msg("Catalog request failed")
	s.println(s.styles.failure.Render(fmt.Sprintf("request failed: %v", err)))
	return nil
}

// playDoneSound starts the configured sound without waiting for it
func (s *Session) playDoneSound() {
	if s.opts.Player == nil || s.opts.DoneSound == "" {
		return
	}
	if err := s.opts.Player.Start(s.opts.DoneSound); err != nil {
		s.logger.Warn().Err(err).Str("sound", s.opts.DoneSound).Msg("Failed to play done sound")
	}
}

// prompt writes label and reads one line of input without its line ending
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			s.println()
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) println(text ...string) {
	fmt.Fprintln(s.out, strings.Join(text, ""))
}

func parseChoice(line string) (choice, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	switch c := choice(n); c {
	case choiceTopTracks, choiceAlbums, choiceFindTrack:
		return c, true
	default:
		return 0, false
	}
}
