/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
)

func serveHealthCheck(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

// serveRoomList exposes the registry snapshot as JSON, mostly for the
// browser client's lobby view.
func serveRoomList(cfg *Config, registry *RoomRegistry, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()

		data, err := json.Marshal(msgRoomList(registry.List()))
		if err != nil {
			errs <- err

			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		written, err := w.Write(data)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Room list (%s) to %s in %s",
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveRobots(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		data := `User-agent: Amazonbot
Disallow: /

User-agent: Applebot-Extended
Disallow: /

User-agent: Bytespider
Disallow: /

User-agent: CCBot
Disallow: /

User-agent: ClaudeBot
Disallow: /

User-agent: Google-Extended
Disallow: /

User-agent: GPTBot
Disallow: /

User-agent: meta-externalagent
Disallow: /`

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(data))
		if err != nil {
			errs <- err

			return
		}
	}
}

// Simple HTML client for quick testing; the desktop GUI speaks the same
// protocol.
const indexHTML = `<!doctype html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Словесная цепочка</title>
<style>
  body { font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 2rem; }
  h1 { margin-bottom: 0.5rem; }
  #status { margin-bottom: 1rem; font-size: 0.9rem; }
  #feed { margin-top: 1rem; padding: 0; list-style: none; max-height: 24rem; overflow-y: auto; }
  #feed li { padding: 0.25rem 0; border-bottom: 1px solid #ddd; white-space: pre-wrap; }
  #feed li.turn { font-weight: bold; }
  #input { width: 24rem; }
</style>
</head>
<body>
<h1>Словесная цепочка</h1>
<div id="status">Подключение…</div>
<input id="input" placeholder="команда или слово" disabled>
<button id="send" disabled>Отправить</button>
<ul id="feed"></ul>

<script>
(function() {
  const statusEl = document.getElementById('status');
  const feedEl = document.getElementById('feed');
  const inputEl = document.getElementById('input');
  const sendEl = document.getElementById('send');

  function append(text, turn) {
    const li = document.createElement('li');
    li.textContent = text;
    if (turn) { li.className = 'turn'; }
    feedEl.prepend(li);
  }

  const proto = (location.protocol === 'https:') ? 'wss://' : 'ws://';
  const wsPath = location.pathname.replace(/\/$/, '') + '/ws';
  const ws = new WebSocket(proto + location.host + wsPath);

  ws.onopen = function() {
    statusEl.textContent = 'Подключено.';

    const name = prompt('Введите ваше имя:') || '';
    if (!name) {
      ws.close();
      return;
    }
    ws.send(name);

    inputEl.disabled = false;
    sendEl.disabled = false;

    const room = new URLSearchParams(location.search).get('room');
    if (room) {
      ws.send('присоединиться ' + room);
    }
  };

  function submit() {
    const line = inputEl.value.trim();
    if (!line) { return; }
    ws.send(line);
    inputEl.value = '';
  }
  sendEl.onclick = submit;
  inputEl.onkeydown = function(e) { if (e.key === 'Enter') { submit(); } };

  ws.onmessage = function(event) {
    try {
      const msg = JSON.parse(event.data);

      if (msg.type === 'room_list' && Array.isArray(msg.rooms)) {
        append('Комнаты: ' + (msg.rooms.join(', ') || '(нет)'));
        return;
      }

      if (msg.type === 'your_turn') {
        append(msg.message, true);
        return;
      }

      if (msg.message) {
        append(msg.message);
        return;
      }
    } catch (e) {
      console.error('bad message', e);
    }
  };

  ws.onclose = function() {
    statusEl.textContent = 'Отключено.';
    inputEl.disabled = true;
    sendEl.disabled = true;
  };

  ws.onerror = function() {
    statusEl.textContent = 'Ошибка соединения.';
  };
})();
</script>
</body>
</html>
`

func serveHomePage(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write([]byte(indexHTML))
	}
}
