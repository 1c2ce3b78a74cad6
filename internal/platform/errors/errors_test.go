package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorChain(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeCollaboratorFailure, "append minute", cause)

	if err.Error() != "append minute" {
		t.Errorf("Error() = %q, want internal message", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable through the chain")
	}
	if !stderrors.Is(err, New(CodeCollaboratorFailure, "different message")) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, New(CodeNotFound, "append minute")) {
		t.Error("errors with different codes should not match")
	}
}

func TestGetCode(t *testing.T) {
	err := New(CodeRoomForbidden, "no capability")
	if got := GetCode(err); got != CodeRoomForbidden {
		t.Errorf("GetCode() = %s, want ROOM_FORBIDDEN", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %s, want UNKNOWN", got)
	}
	if got := GetCode(fmt.Errorf("wrapped: %w", err)); got != CodeRoomForbidden {
		t.Errorf("GetCode(wrapped) = %s, want ROOM_FORBIDDEN", got)
	}

	if !IsCode(err, CodeRoomForbidden) {
		t.Error("IsCode should match the code")
	}
	if IsCode(err, CodeNotFound) {
		t.Error("IsCode should not match a different code")
	}
}

func TestGetMetadata(t *testing.T) {
	err := WithMetadata(CodeRoomQuorumNotMet, "quorum", map[string]string{"Present": "1"})
	if got := GetMetadata(err); got["Present"] != "1" {
		t.Errorf("GetMetadata() = %v, want Present=1", got)
	}
	if got := GetMetadata(fmt.Errorf("plain")); got != nil {
		t.Errorf("GetMetadata(plain) = %v, want nil", got)
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeRoomForbidden, codes.PermissionDenied},
		{CodeRoomInvalidTransition, codes.FailedPrecondition},
		{CodeRoomQuorumNotMet, codes.FailedPrecondition},
		{CodeRoomSessionEnded, codes.FailedPrecondition},
		{CodeVoteEmptyMotion, codes.InvalidArgument},
		{CodeNotFound, codes.NotFound},
		{CodeParticipantNotFound, codes.NotFound},
		{CodeCollaboratorFailure, codes.Unavailable},
		{CodeAuthInvalidToken, codes.Unauthenticated},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Errorf("%s.GRPCCode() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestHandleError(t *testing.T) {
	err := WithMetadata(CodeRoomQuorumNotMet, "quorum has not been met",
		map[string]string{"Present": "1", "Required": "3"})

	handled := HandleError(err, "")
	st, ok := status.FromError(handled)
	if !ok {
		t.Fatalf("HandleError() did not return a status error: %v", handled)
	}
	if st.Code() != codes.FailedPrecondition {
		t.Errorf("status code = %v, want FailedPrecondition", st.Code())
	}

	var localized *errdetails.LocalizedMessage
	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.LocalizedMessage:
			localized = d
		case *errdetails.ErrorInfo:
			info = d
		}
	}
	if info == nil || info.Reason != string(CodeRoomQuorumNotMet) {
		t.Fatalf("ErrorInfo = %+v, want reason ROOM_QUORUM_NOT_MET", info)
	}
	if info.Metadata["Required"] != "3" {
		t.Errorf("ErrorInfo metadata = %v, want Required=3", info.Metadata)
	}
	if localized == nil || localized.Locale != "en-US" {
		t.Fatalf("LocalizedMessage = %+v, want en-US", localized)
	}
	if localized.Message != "Quorum has not been reached (1 of 3 required members present)" {
		t.Errorf("localized message = %q", localized.Message)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	handled := HandleError(fmt.Errorf("boom"), "en-US")
	st, ok := status.FromError(handled)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("HandleError(plain) = %v, want internal status", handled)
	}
}

func TestHandleErrorNil(t *testing.T) {
	if got := HandleError(nil, "en-US"); got != nil {
		t.Fatalf("HandleError(nil) = %v, want nil", got)
	}
}
