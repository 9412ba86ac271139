// Package notify coleta as mensagens transitórias exibidas em #message-container.
package notify

import (
	"strconv"
	"sync"
	"time"
	"unicode/utf8"
	"unicode/utf16"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/po-console/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DismissAfter é o tempo até a mensagem começar a sumir.
	DismissAfter = 5 * time.Second
	// FadeOut é a duração do fade antes da remoção do DOM.
	FadeOut = 300 * time.Millisecond

	// TriggerEvent é o evento htmx disparado no navegador para cada lote de mensagens.
	TriggerEvent = "notify"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notice struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Level   Level  `json:"level"`
}

func (n Notice) IsError() bool {
	return n.Level == LevelError
}

// Class devolve as classes CSS do item da lista.
func (n Notice) Class() string {
	return "message " + string(n.Level)
}

// Collector acumula as mensagens de uma resposta.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

func NewCollector() *Collector {
	return &Collector{}
}

// Notify registra uma mensagem de sucesso ou erro.
func (c *Collector) Notify(message string, isError bool) {
	level := LevelSuccess
	if isError {
		level = LevelError
	}

	id, err := utils.GenerateID(10)
	if err != nil {
		id = strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, Notice{ID: "msg-" + id, Message: message, Level: level})
}

// Notices devolve as mensagens da mais recente para a mais antiga, a ordem em que aparecem na lista.
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notice, len(c.notices))
	for i, n := range c.notices {
		out[len(c.notices)-1-i] = n
	}
	return out
}

func (c *Collector) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notices) == 0
}

type triggerPayload struct {
	Items        []Notice `json:"items"`
	DismissAfter int64    `json:"dismissAfter"`
	FadeOut      int64    `json:"fadeOut"`
}

// TriggerHeader monta o valor do cabeçalho HX-Trigger com as mensagens na ordem de chegada.
// O JSON sai só com ASCII: o navegador lê cabeçalhos como Latin-1.
func (c *Collector) TriggerHeader() (string, error) {
	c.mu.Lock()
	items := append([]Notice(nil), c.notices...)
	c.mu.Unlock()

	data, err := json.Marshal(map[string]triggerPayload{
		TriggerEvent: {
			Items:        items,
			DismissAfter: DismissAfter.Milliseconds(),
			FadeOut:      FadeOut.Milliseconds(),
		},
	})
	if err != nil {
		return "", err
	}

	return asciiJSON(data), nil
}

func asciiJSON(data []byte) string {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]

		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}

		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = appendEscape(out, r1)
			out = appendEscape(out, r2)
			continue
		}
		out = appendEscape(out, r)
	}
	return string(out)
}

func appendEscape(out []byte, r rune) []byte {
	const hex = "0123456789abcdef"
	return append(out, '\\', 'u', hex[r>>12&0xf], hex[r>>8&0xf], hex[r>>4&0xf], hex[r&0xf])
}
