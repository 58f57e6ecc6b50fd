package main

import "fmt"

// Client commands, in the wire vocabulary the desktop client speaks.
// Commands are matched case-insensitively; anything else sent while the
// client is in a room is treated as a move.
const (
	cmdList   = "список"
	cmdCreate = "создать"
	cmdJoin   = "присоединиться"
	cmdSwitch = "перейти"
	cmdBan    = "ban"
	cmdExit   = "exit"
)

// NoticeMessage is for generic free-text notifications.
type NoticeMessage struct {
	Type    string `json:"type"` // "notice"
	Message string `json:"message"`
}

// RoomListMessage carries a snapshot of room names.
type RoomListMessage struct {
	Type  string   `json:"type"` // "room_list"
	Rooms []string `json:"rooms"`
}

// TurnPromptMessage is sent to exactly one client when it is their turn.
type TurnPromptMessage struct {
	Type    string `json:"type"` // "your_turn"
	Message string `json:"message"`
}

// MoveAcceptedMessage announces an accepted word to the whole room.
type MoveAcceptedMessage struct {
	Type    string `json:"type"` // "move_accepted"
	Player  string `json:"player"`
	Word    string `json:"word"`
	Points  int    `json:"points"`
	Message string `json:"message"`
}

// MoveRejectedMessage is sent to the mover only; the turn does not advance.
type MoveRejectedMessage struct {
	Type    string `json:"type"`   // "move_rejected"
	Reason  string `json:"reason"` // "already_used", "wrong_letter" or "not_your_turn"
	Message string `json:"message"`
}

// PlayerScore is one row of the final score table.
type PlayerScore struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ScoreboardMessage carries the final score table, in member order.
type ScoreboardMessage struct {
	Type    string        `json:"type"` // "scoreboard"
	Scores  []PlayerScore `json:"scores"`
	Message string        `json:"message"`
}

func msgNotice(text string) NoticeMessage {
	return NoticeMessage{Type: "notice", Message: text}
}

func msgRoomList(rooms []string) RoomListMessage {
	return RoomListMessage{Type: "room_list", Rooms: rooms}
}

func msgTurnPrompt() TurnPromptMessage {
	return TurnPromptMessage{Type: "your_turn", Message: "Ваш ход: "}
}

func msgMoveAccepted(player, word string, points int) MoveAcceptedMessage {
	return MoveAcceptedMessage{
		Type:    "move_accepted",
		Player:  player,
		Word:    word,
		Points:  points,
		Message: fmt.Sprintf("%s назвал слово: %s. Очки: %d", player, word, points),
	}
}

func msgMoveRejected(reason, text string) MoveRejectedMessage {
	return MoveRejectedMessage{Type: "move_rejected", Reason: reason, Message: text}
}

func msgScoreboard(scores []PlayerScore) ScoreboardMessage {
	table := "Результаты игры:"
	for _, s := range scores {
		table += fmt.Sprintf("\n%s: %d очков", s.Name, s.Points)
	}
	return ScoreboardMessage{Type: "scoreboard", Scores: scores, Message: table}
}

// Notice texts, matching the protocol the desktop client renders.
const (
	textWelcome      = "Добро пожаловать! Вы можете создавать комнаты, присоединяться или переходить между ними."
	textWaiting      = "Ожидаем второго игрока..."
	textGameStart    = "Игра начинается!"
	textGameOver     = "Игра завершена."
	textInsufficient = "Недостаточно игроков для продолжения игры. Игра завершена."
	textWrongLetter  = "Слово должно начинаться на последнюю букву предыдущего!"
	textAlreadyUsed  = "Это слово уже было названо!"
	textNotYourTurn  = "Сейчас не ваш ход."
	textNotInRoom    = "Вы не находитесь в комнате."
	textUnknown      = "Неизвестная команда."
)

func textJoined(player, room string) string {
	return fmt.Sprintf("%s присоединился к комнате %s.", player, room)
}

func textLeft(player, room string) string {
	return fmt.Sprintf("%s покинул комнату %s.", player, room)
}

func textCreated(room string) string {
	return fmt.Sprintf("Комната %s создана.", room)
}

func textExists(room string) string {
	return fmt.Sprintf("Комната %s уже существует.", room)
}

func textNotFound(room string) string {
	return fmt.Sprintf("Комната %s не найдена.", room)
}

func textBannedIn(room string) string {
	return fmt.Sprintf("Вы заблокированы в комнате %s.", room)
}

func textBanApplied(player, room string) string {
	return fmt.Sprintf("Игрок %s забанен в комнате %s.", player, room)
}

func textYouJoined(room string) string {
	return fmt.Sprintf("Вы присоединились к комнате %s. %s", room, textWaiting)
}

func textYouSwitched(room string) string {
	return fmt.Sprintf("Вы перешли в комнату %s. %s", room, textWaiting)
}

func textTimedOut(player string) string {
	return fmt.Sprintf("%s не сделал ход вовремя и покидает игру.", player)
}
