package sheets

import (
	"strconv"
	"strings"

	"github.com/karpix25/parser-mass/internal/domain"
)

// The sheets are maintained by hand, in two languages, so every mapper reads
// its columns through an ordered list of known header variants. A mapper
// returns the record, its case-folded dedup key (empty key means skip the
// row), and an error for rows that cannot be interpreted at all.

func mapAccount(row Row) (domain.Account, string, error) {
	username := row.first("usernames", "username", "account", "логин")
	if username == "" {
		return domain.Account{}, "", nil
	}
	return domain.Account{
		Username: username,
		Amount:   parseAmount(row.first("видео", "video", "amount", "количество_видео")),
	}, strings.ToLower(username), nil
}

func mapTag(row Row) (domain.TagRule, string, error) {
	tag := strings.TrimLeft(strings.ToLower(row.first("хэштег", "hashtag")), "#")
	if tag == "" {
		return domain.TagRule{}, "", nil
	}
	return domain.TagRule{
		Tag:     tag,
		Company: row.first("компания", "company"),
		Product: row.first("продукт", "product"),
	}, tag, nil
}

func mapChannel(row Row) (domain.Channel, string, error) {
	channelID := row.first("id_профиля", "idпрофиля", "id_profile", "channel_id")
	if channelID == "" {
		return domain.Channel{}, "", nil
	}
	return domain.Channel{
		ChannelID: channelID,
		Amount:    parseAmount(row.first("видео", "video", "amount")),
	}, strings.ToLower(channelID), nil
}

func mapProfile(row Row) (domain.Profile, string, error) {
	username := row.first("usernames", "username", "логин", "login")
	userID := row.first("id_профиля", "idпрофиля", "id-профиля", "id_profile", "profile_id", "user_id")
	if userID == "" && username == "" {
		return domain.Profile{}, "", nil
	}
	if userID == "" {
		userID = username
	}
	if username == "" {
		username = userID
	}
	return domain.Profile{
		UserID:   userID,
		Username: username,
		Amount:   parseAmount(row.first("видео", "video", "amount", "количество_видео")),
	}, strings.ToLower(userID), nil
}

func parseAmount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(strings.ToLower(raw)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
