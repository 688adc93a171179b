// Package v1alpha1 defines the combat.v1alpha1 wire API: request and response
// messages, the CombatService descriptor, and a client. Messages travel as
// JSON over gRPC using the codec registered in this package.
package v1alpha1

// Fight status values
const (
	FightStatusActive   = "active"
	FightStatusFinished = "finished"
)

// Fight is one combat encounter
type Fight struct {
	Id     string `json:"id"`
	DmId   string `json:"dm_id"`
	Status string `json:"status"`
	// CreatedAt and FinishedAt are unix milliseconds; FinishedAt is 0 while active
	CreatedAt  int64 `json:"created_at"`
	FinishedAt int64 `json:"finished_at,omitempty"`
}

// Participant is a roster row as the caller may see it
type Participant struct {
	Id          string `json:"id"`
	FightId     string `json:"fight_id"`
	IsEnemy     bool   `json:"is_enemy"`
	AccountId   string `json:"account_id,omitempty"`
	Name        string `json:"name"`
	CurrentHp   int32  `json:"current_hp"`
	MaxHp       int32  `json:"max_hp"`
	ArmorClass  int32  `json:"armor_class"`
	Initiative  int32  `json:"initiative"`
	StatsHidden bool   `json:"stats_hidden,omitempty"`
	UpdatedAt   int64  `json:"updated_at"`
}

// EnemyAttributes is the full attribute set of a new enemy
type EnemyAttributes struct {
	Name       string `json:"name"`
	CurrentHp  int32  `json:"current_hp"`
	MaxHp      int32  `json:"max_hp"`
	ArmorClass int32  `json:"armor_class"`
	Initiative int32  `json:"initiative"`
}

// InitiativeRoll reports a rolled initiative
type InitiativeRoll struct {
	Die      int32 `json:"die"`
	Modifier int32 `json:"modifier"`
	Total    int32 `json:"total"`
}

// MonsterRef names a bestiary entry
type MonsterRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type GetActiveFightRequest struct{}

type GetActiveFightResponse struct {
	// Fight is nil when no fight is active
	Fight *Fight `json:"fight,omitempty"`
}

type ListParticipantsRequest struct {
	FightId string `json:"fight_id"`
}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
	ViewerIsDm   bool           `json:"viewer_is_dm"`
}

type SubscribeParticipantsRequest struct {
	FightId string `json:"fight_id"`
}

// ParticipantsSnapshot is one full roster pushed on a subscription
type ParticipantsSnapshot struct {
	FightId      string         `json:"fight_id"`
	Participants []*Participant `json:"participants"`
	// Sequence counts snapshots on this stream starting at 1
	Sequence uint64 `json:"sequence"`
}

type StartFightRequest struct{}

type StartFightResponse struct {
	Fight            *Fight   `json:"fight"`
	FinishedFightIds []string `json:"finished_fight_ids,omitempty"`
}

type FinishFightRequest struct {
	FightId string `json:"fight_id"`
}

type FinishFightResponse struct {
	Fight              *Fight `json:"fight"`
	ParticipantsPurged int64  `json:"participants_purged"`
}

type JoinFightRequest struct {
	FightId    string `json:"fight_id"`
	Initiative int32  `json:"initiative"`
}

type JoinFightResponse struct {
	Participant *Participant `json:"participant"`
	Created     bool         `json:"created"`
}

type SetOwnHpRequest struct {
	FightId string `json:"fight_id"`
	Hp      int32  `json:"hp"`
}

type SetOwnHpResponse struct {
	Participant *Participant `json:"participant"`
}

type SetParticipantHpRequest struct {
	ParticipantId string `json:"participant_id"`
	Hp            int32  `json:"hp"`
}

type SetParticipantHpResponse struct {
	Participant *Participant `json:"participant"`
}

type AddEnemyRequest struct {
	FightId string           `json:"fight_id"`
	Enemy   *EnemyAttributes `json:"enemy"`
}

type AddEnemyResponse struct {
	Participant *Participant `json:"participant"`
}

type AddMonsterRequest struct {
	FightId    string `json:"fight_id"`
	MonsterKey string `json:"monster_key"`
	Name       string `json:"name,omitempty"`
	// Initiative is rolled when omitted
	Initiative *int32 `json:"initiative,omitempty"`
}

type AddMonsterResponse struct {
	Participant    *Participant    `json:"participant"`
	InitiativeRoll *InitiativeRoll `json:"initiative_roll,omitempty"`
}

// EditEnemyRequest is a partial update; omitted fields are unchanged
type EditEnemyRequest struct {
	ParticipantId string  `json:"participant_id"`
	Name          *string `json:"name,omitempty"`
	CurrentHp     *int32  `json:"current_hp,omitempty"`
	MaxHp         *int32  `json:"max_hp,omitempty"`
	ArmorClass    *int32  `json:"armor_class,omitempty"`
	Initiative    *int32  `json:"initiative,omitempty"`
}

type EditEnemyResponse struct {
	Participant *Participant `json:"participant"`
}

type DeleteEnemyRequest struct {
	ParticipantId string `json:"participant_id"`
}

type DeleteEnemyResponse struct {
	FightId string `json:"fight_id"`
}

type ResyncStatsRequest struct {
	FightId string `json:"fight_id"`
}

type ResyncStatsResponse struct {
	Participant *Participant `json:"participant"`
}

type ListMonstersRequest struct{}

type ListMonstersResponse struct {
	Monsters []*MonsterRef `json:"monsters"`
}
