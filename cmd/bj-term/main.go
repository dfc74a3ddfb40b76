package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/rs/cors"

	"github.com/rcapers/bj-term/internal/api"
	"github.com/rcapers/bj-term/internal/db"
	"github.com/rcapers/bj-term/internal/game"
	"github.com/rcapers/bj-term/internal/session"
	"github.com/rcapers/bj-term/internal/store"
	"github.com/rcapers/bj-term/internal/ui"
)

func main() {
	// .env supplies defaults; flags win
	_ = godotenv.Load()

	var (
		dbPath  = flag.String("db", envOr("BJ_DB_PATH", "./data/bj-term.db"), "Database path")
		balance = flag.Int("balance", envInt("BJ_BALANCE", session.DefaultBalance), "Starting balance for a fresh session")
		serve   = flag.String("serve", os.Getenv("BJ_SERVE"), "Listen address for the spectator server (empty disables it)")
		noSound = flag.Bool("no-sound", os.Getenv("BJ_NO_SOUND") != "", "Disable sound effects")
	)
	flag.Parse()

	gameStore := openStore(*dbPath)
	sess := loadSession(gameStore, *balance)

	events := &game.Emitter{}
	if !*noSound {
		events.Subscribe(playSound)
	}

	var hub *api.Hub
	var handlers *api.Handlers
	if *serve != "" {
		hub = api.NewHub()
		go hub.Run()
		handlers = api.NewHandlers(gameStore, hub)
		handlers.UpdateSession(sess)
		events.Subscribe(hub.BroadcastEvent)
		startServer(*serve, handlers)
	}

	ui.Banner()
	pterm.Printfln("Your balance is: $%d", sess.Balance)

	// The shoe survives across rounds; each round borrows it exclusively.
	deck := game.NewDeck()

	for {
		if sess.Broke() {
			ui.ShowGoodbye(true)
			break
		}

		switch ui.MainMenu() {
		case ui.MenuStats:
			ui.ShowStats(sess)
			continue
		case ui.MenuQuit:
			saveSession(gameStore, sess)
			ui.ShowGoodbye(false)
			return
		}

		if quit := playRound(deck, sess, events, gameStore, hub, handlers); quit {
			// Abandoned mid-round: the ledger is untouched, save and leave
			saveSession(gameStore, sess)
			ui.ShowGoodbye(false)
			return
		}
	}

	saveSession(gameStore, sess)
}

// playRound drives one round from bet to settlement. It returns true when
// the player quit mid-round.
func playRound(deck *game.Deck, sess *session.Session, events *game.Emitter, st store.Store, hub *api.Hub, handlers *api.Handlers) bool {
	r := game.NewRound(deck, sess.Balance, events)

	// Invalid bets are rejected by the engine and re-prompted here
	for {
		bet := ui.PromptBet(sess.Balance)
		if err := r.PlaceBet(bet); err != nil {
			pterm.Error.Println(err)
			continue
		}
		break
	}
	publish(r, hub)

	if r.State() == game.StateInsurance {
		if ui.PromptInsurance(r.Bet() / 2) {
			if err := r.TakeInsurance(); err != nil {
				pterm.Error.Println(err)
				r.DeclineInsurance()
			}
		} else {
			r.DeclineInsurance()
		}
		publish(r, hub)
	}

	for r.State() == game.StatePlayerTurn {
		switch ui.PromptAction(r.CanDouble()) {
		case ui.ActionHit:
			r.Hit()
		case ui.ActionStand:
			r.Stand()
		case ui.ActionDouble:
			if err := r.Double(); err != nil {
				pterm.Error.Println(err)
				continue
			}
		case ui.ActionQuit:
			r.Abandon()
			return true
		}
		publish(r, hub)
	}

	res, ok := r.Result()
	if !ok {
		return false
	}

	// Balance and statistics move together, then persist, before the next bet
	achievements := sess.Apply(res)
	ui.ShowResult(res, sess.Balance)
	for _, ev := range achievements {
		events.Emit(ev)
		ui.ShowEvent(ev)
	}

	saveSession(st, sess)
	if err := st.SaveRound(sess.Record(r.ID, res, r.Bet())); err != nil {
		log.Printf("Warning: failed to save round history: %v", err)
	}
	if handlers != nil {
		handlers.UpdateSession(sess)
	}

	return false
}

// publish renders the round locally and streams the snapshot to spectators.
// The engine never waits on either.
func publish(r *game.Round, hub *api.Hub) {
	snap := r.Snapshot()
	ui.RenderRound(snap)
	if hub != nil {
		hub.BroadcastSnapshot(snap)
	}
}

// playSound is the audio layer: a terminal bell on game events. Purely
// fire-and-forget; nothing consults its effect.
func playSound(ev game.Event) {
	switch ev.Type {
	case game.EventDeal, game.EventWin, game.EventLoss, game.EventPush, game.EventAchievement:
		fmt.Print("\a")
	}
}

// openStore opens the SQLite store, falling back to memory when the
// database cannot be used. Never fatal.
func openStore(dbPath string) store.Store {
	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Printf("Warning: failed to create data directory: %v", err)
		log.Println("Continuing without persistence")
		return store.NewMemoryStore()
	}

	database, err := db.NewDatabase(dbPath)
	if err != nil {
		log.Printf("Warning: failed to initialize database: %v", err)
		log.Println("Continuing without persistence")
		return store.NewMemoryStore()
	}

	return store.NewDatabaseStore(database)
}

// loadSession restores the saved ledger, or starts a fresh session when no
// usable save exists.
func loadSession(st store.Store, startBalance int) *session.Session {
	sess, err := st.LoadSession()
	if err != nil {
		log.Printf("Warning: failed to load saved session: %v", err)
	}
	if sess == nil {
		return session.NewWithBalance(startBalance)
	}
	return sess
}

// saveSession persists the ledger. Write failures are surfaced but never
// block continued play.
func saveSession(st store.Store, sess *session.Session) {
	if err := st.SaveSession(sess); err != nil {
		log.Printf("Warning: failed to save session: %v", err)
	}
}

// startServer exposes the read-only spectator surface over HTTP.
func startServer(addr string, handlers *api.Handlers) {
	r := mux.NewRouter()
	handlers.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Spectator server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Spectator server error: %v", err)
		}
	}()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
