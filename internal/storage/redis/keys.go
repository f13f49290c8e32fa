package redis

import (
	"fmt"

	"github.com/pcowley/snake-spectacle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "snake"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// playersIndexKey returns the Redis key for the SET of all player ids
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// accountKey returns the Redis key for an Account
func accountKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, playerID)
}

// emailIndexKey returns the Redis key for the email -> player_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// scoreKey returns the Redis key for a ScoreRecord
func scoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// scoresByModeKey returns the Redis key for the per-mode ZSET of score ids,
// scored by the record's score value
func scoresByModeKey(mode model.GameMode) string {
	return fmt.Sprintf("%s:idx:scores:%s", keyPrefix, mode)
}

// scoresListKey returns the Redis key for the LIST of score ids in
// insertion order
func scoresListKey() string {
	return fmt.Sprintf("%s:scores", keyPrefix)
}

// scoreSeqKey returns the Redis key for the score generation-order counter
func scoreSeqKey() string {
	return fmt.Sprintf("%s:seq:scores", keyPrefix)
}
