package main

import (
	ladder "Lestnitsa/internal/calc/ladder"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

// Состояния диалога расчета
type dialogState int

const (
	stateIdle dialogState = iota
	stateChoosingType
	stateEnteringHeight
	stateEnteringLength
	stateEnteringWidth
)

type session struct {
	state      dialogState
	ladderType int
	height     float64
	length     float64
}

var typeMapping = map[string]int{
	"Прямая":      ladder.TypeStraight,
	"П-образная":  ladder.TypeUShaped,
	"Г-образная":  ladder.TypeLShaped,
}

var stairTypeKeyboard = map[string]any{
	"keyboard": [][]map[string]string{
		{{"text": "Прямая"}},
		{{"text": "П-образная"}},
		{{"text": "Г-образная"}},
	},
	"resize_keyboard": true,
}

var cancelKeyboard = map[string]any{
	"keyboard": [][]map[string]string{
		{{"text": "Отмена"}},
	},
	"resize_keyboard": true,
}

func main() {
	_ = godotenv.Load()
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	calc := ladder.New(ladder.DefaultConfig())
	sessions := map[int64]*session{}

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message == nil {
				continue
			}
			s, ok := sessions[u.Message.Chat.ID]
			if !ok {
				s = &session{}
				sessions[u.Message.Chat.ID] = s
			}
			handleMessage(token, calc, s, u.Message)
		}
		time.Sleep(1 * time.Second)
	}
}

func handleMessage(token string, calc *ladder.Calculator, s *session, msg *Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch {
	case text == "/start":
		*s = session{state: stateChoosingType}
		sendMessage(token, chatID,
			"📐 Добро пожаловать в калькулятор лестниц!\n\nВыберите тип лестницы:", stairTypeKeyboard)
		return
	case text == "Отмена":
		*s = session{state: stateChoosingType}
		sendMessage(token, chatID, "Расчет отменен. Начните сначала:", stairTypeKeyboard)
		return
	}

	switch s.state {
	case stateChoosingType:
		ladderType, ok := typeMapping[text]
		if !ok {
			sendMessage(token, chatID,
				"Пожалуйста, выберите тип лестницы из предложенных вариантов:", stairTypeKeyboard)
			return
		}
		s.ladderType = ladderType
		s.state = stateEnteringHeight
		sendMessage(token, chatID, "Введите высоту подъема (в см):", cancelKeyboard)

	case stateEnteringHeight:
		height, err := parseNumber(text)
		if err != nil {
			sendMessage(token, chatID, "Пожалуйста, введите число (например: 270 или 270.5):", nil)
			return
		}
		if height <= 0 {
			sendMessage(token, chatID, "Высота должна быть положительным числом. Попробуйте еще раз:", nil)
			return
		}
		if height > 500 {
			sendMessage(token, chatID, "Высота слишком большая. Введите значение до 500 см:", nil)
			return
		}
		s.height = height
		s.state = stateEnteringLength
		sendMessage(token, chatID, "Введите длину проема (в см):", cancelKeyboard)

	case stateEnteringLength:
		length, err := parseNumber(text)
		if err != nil {
			sendMessage(token, chatID, "Пожалуйста, введите число (например: 450 или 450.5):", nil)
			return
		}
		if length <= 0 {
			sendMessage(token, chatID, "Длина должна быть положительным числом. Попробуйте еще раз:", nil)
			return
		}
		if length > 1000 {
			sendMessage(token, chatID, "Длина слишком большая. Введите значение до 1000 см:", nil)
			return
		}
		s.length = length
		s.state = stateEnteringWidth
		sendMessage(token, chatID, "Введите ширину проема (в см):", cancelKeyboard)

	case stateEnteringWidth:
		width, err := parseNumber(text)
		if err != nil {
			sendMessage(token, chatID, "Пожалуйста, введите число (например: 100 или 100.5):", nil)
			return
		}
		if width <= 0 {
			sendMessage(token, chatID, "Ширина должна быть положительным числом. Попробуйте еще раз:", nil)
			return
		}
		if width > 1000 {
			sendMessage(token, chatID, "Ширина слишком большая. Введите значение до 1000 см:", nil)
			return
		}

		result := calc.CalculateAll(ladder.Input{
			Height:     s.height,
			Length:     s.length,
			Width:      &width,
			LadderType: s.ladderType,
		})
		sendMessage(token, chatID, FormatResult(result), stairTypeKeyboard)
		*s = session{state: stateChoosingType}

	default:
		sendMessage(token, chatID, "Отправьте /start, чтобы начать расчет.", nil)
	}
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string, replyMarkup map[string]any) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if replyMarkup != nil {
		payload["reply_markup"] = replyMarkup
	}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
