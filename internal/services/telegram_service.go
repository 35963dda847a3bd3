package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService routes customer inquiries to the shop's Telegram admin
// chat. The storefront has no checkout; this channel is how "purchases"
// actually happen.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// InquiryNotification carries the inquiry data shown to the admin.
type InquiryNotification struct {
	ProductBrand string
	ProductName  string
	ProductPrice *float64
	CustomerName string
	Phone        string
	Message      string
}

// FormatPrice formats a price with currency and thousand separators. An
// unknown price renders as a request-for-quote marker.
func FormatPrice(amount *float64, currency string) string {
	if amount == nil {
		return "по запросу"
	}
	if currency == "" {
		currency = "USD"
	}

	intAmount := int64(*amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String() + " " + currency
}

// NotifyNewInquiry sends a new product inquiry to the admin chat.
func (s *TelegramService) NotifyNewInquiry(inquiry InquiryNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	message := fmt.Sprintf(`<b>🛍 НОВАЯ ЗАЯВКА!</b>
<b>🧴 Товар:</b> %s — %s
<b>💰 Цена:</b> %s
<b>👤 Клиент:</b> %s
<b>📞 Телефон:</b> %s
<b>💬 Сообщение:</b> %s
━━━━━━━━━━━━━━━━━━
<i>Aromique</i>`,
		inquiry.ProductBrand,
		inquiry.ProductName,
		FormatPrice(inquiry.ProductPrice, "USD"),
		inquiry.CustomerName,
		inquiry.Phone,
		inquiry.Message,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
