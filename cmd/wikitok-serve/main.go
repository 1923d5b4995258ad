// Command wikitok-serve is a small debug server: a client connects over a
// websocket, sends wikitext, and receives back one JSON frame per token as
// the scanner produces them - useful for a live editor preview.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/wikitext/tokenizer/token"
	wikitok "github.com/wikitext/tokenizer"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", ":8787", "address to listen on")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mux := http.NewServeMux()
	mux.HandleFunc("/tokenize", serveTokenize(log))

	log.Info().Str("addr", *addr).Msg("wikitok-serve listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal().Err(err).Msg("wikitok-serve exited")
	}
}

func serveTokenize(log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		for {
			_, src, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn().Err(err).Msg("websocket read error")
				}
				return
			}

			start := time.Now()
			toks, err := wikitok.Tokenize(src)
			if err != nil {
				log.Error().Err(err).Msg("tokenize failed")
				continue
			}
			log.Debug().Int("tokens", len(toks)).Dur("elapsed", time.Since(start)).Msg("tokenized")

			if err := streamTokens(conn, toks); err != nil {
				log.Error().Err(err).Msg("stream tokens failed")
				return
			}
		}
	}
}

// streamTokens writes one JSON text frame per token, then a final
// {"done":true} frame marking the end of this tokenize request's stream.
func streamTokens(conn *websocket.Conn, toks []token.Token) error {
	for _, tok := range toks {
		payload, err := json.Marshal(tok)
		if err != nil {
			return err
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return err
		}
	}
	return conn.WriteMessage(websocket.TextMessage, []byte(`{"done":true}`))
}
