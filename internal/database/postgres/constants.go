package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Constraint names referenced by error mapping
const (
	ConstraintParticipantEmail = "participants_email_key"
)

// Empty JSON documents for NOT NULL jsonb columns
const (
	EmptyJSONObject = `{}`
	EmptyJSONArray  = `[]`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToLockCycle         = "failed to lock league cycle"
)

// Error Messages - Participant Operations
const (
	ErrMsgFailedToCreateParticipant = "failed to create participant"
	ErrMsgFailedToGetParticipant    = "failed to get participant"
	ErrMsgFailedToApplyCredit       = "failed to apply credit"
	ErrMsgFailedToDebitCoins        = "failed to debit coins"
	ErrMsgFailedToGetActivityCounts = "failed to get activity counts"
	ErrMsgFailedToResetWeeklyXP     = "failed to reset weekly xp"
	ErrMsgParticipantExists         = "participant %s already exists"
)

// Error Messages - Mission Operations
const (
	ErrMsgFailedToListMissions    = "failed to list missions"
	ErrMsgFailedToGetMission      = "failed to get mission"
	ErrMsgFailedToUpsertMission   = "failed to upsert mission"
	ErrMsgFailedToMarshalContent  = "failed to marshal mission content"
	ErrMsgFailedToDecodeContent   = "failed to decode content of mission %s: %w"
	ErrMsgFailedToEnsureProgress  = "failed to ensure progress"
	ErrMsgFailedToGetProgress     = "failed to get progress"
	ErrMsgFailedToListProgress    = "failed to list progress"
	ErrMsgFailedToSwapProgress    = "failed to update progress"
	ErrMsgFailedToRecordAttempt   = "failed to record attempt"
	ErrMsgFailedToListAttempts    = "failed to list attempts"
	ErrMsgFailedToMarshalResult   = "failed to marshal quiz result"
	ErrMsgFailedToUnmarshalResult = "failed to unmarshal quiz result"
	ErrMsgFailedToCreateEvidence  = "failed to create evidence"
	ErrMsgFailedToGetEvidence     = "failed to get evidence"
	ErrMsgFailedToListEvidence    = "failed to list evidence"
	ErrMsgFailedToUpdateEvidence  = "failed to update evidence status"
	ErrMsgProgressNotFound        = "%w: progress %s/%s"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToListEvents        = "failed to list events"
	ErrMsgFailedToGetEvent          = "failed to get event"
	ErrMsgFailedToUpsertEvent       = "failed to upsert event"
	ErrMsgFailedToMarshalRules      = "failed to marshal eligibility rules"
	ErrMsgFailedToUnmarshalRules    = "failed to unmarshal rules of event %s: %w"
	ErrMsgFailedToCreateDocument    = "failed to create document"
	ErrMsgFailedToGetDocument       = "failed to get document"
	ErrMsgFailedToListDocuments     = "failed to list documents"
	ErrMsgFailedToUpdateDocument    = "failed to update document status"
	ErrMsgFailedToListAchievements  = "failed to list achievements"
	ErrMsgFailedToUpsertAchievement = "failed to upsert achievement"
)

// Error Messages - Reward Operations
const (
	ErrMsgFailedToListRewards      = "failed to list rewards"
	ErrMsgFailedToGetReward        = "failed to get reward"
	ErrMsgFailedToUpsertReward     = "failed to upsert reward"
	ErrMsgFailedToConsumeStock     = "failed to consume stock"
	ErrMsgFailedToInsertRedemption = "failed to insert redemption"
	ErrMsgFailedToListRedemptions  = "failed to list redemptions"
	ErrMsgFailedToGetRedemption    = "failed to get redemption"
	ErrMsgFailedToUpdateRedemption = "failed to update redemption status"
)

// Error Messages - League Operations
const (
	ErrMsgFailedToGetLeague          = "failed to get league"
	ErrMsgFailedToListLeagues        = "failed to list leagues"
	ErrMsgFailedToAddMember          = "failed to add league member"
	ErrMsgFailedToCheckMembership    = "failed to check league membership"
	ErrMsgFailedToListStandings      = "failed to list standings"
	ErrMsgFailedToGetLeagueState     = "failed to get league state"
	ErrMsgFailedToFinalizeMembership = "failed to finalize membership"
	ErrMsgFailedToCloseLeague        = "failed to close league"
	ErrMsgFailedToCreateLeague       = "failed to create league"
	ErrMsgFailedToSetCycle           = "failed to set cycle"
	ErrMsgFailedToMarshalRewards     = "failed to marshal league rewards"
	ErrMsgFailedToUnmarshalRewards   = "failed to unmarshal rewards of league %s: %w"
)
