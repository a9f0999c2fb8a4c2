package practicesession

import "errors"

var (
	ErrNoEligibleQuestions  = errors.New("no questions match the selected filters")
	ErrInvalidQuestionCount = errors.New("question count must be \"all\" or a positive integer")
	ErrUnknownQuestion      = errors.New("question is not part of this session")
	ErrOptionOutOfRange     = errors.New("option index out of range")
	ErrIndexOutOfRange      = errors.New("question index out of range")
	ErrAnswerRequired       = errors.New("please select an answer before moving on")
	ErrReviewActive         = errors.New("session is in review mode")
	ErrSessionCompleted     = errors.New("session already ended")
	ErrSessionIncomplete    = errors.New("session is not complete")
)
