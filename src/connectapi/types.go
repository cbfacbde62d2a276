package connectapi

import "context"

// ListPageCap bounds every listing call to a single page of this size.
// Pagination tokens are never followed: an instance with more resources of
// one kind than the cap silently truncates. Known design limit.
const ListPageCap int32 = 100

// StatusPublished is the publication status required before flow and module
// content can be exported.
const StatusPublished = "PUBLISHED"

// QueueTypeAgent marks the per-agent queues Connect manages internally.
// They are not user-managed resources and are never exported.
const QueueTypeAgent = "AGENT"

// Instance identifies the contact-center instance being exported.
type Instance struct {
	Id                   string `json:"Id"`
	Arn                  string `json:"Arn"`
	Alias                string `json:"InstanceAlias"`
	Status               string `json:"InstanceStatus,omitempty"`
	ServiceRole          string `json:"ServiceRole,omitempty"`
	InboundCallsEnabled  bool   `json:"InboundCallsEnabled"`
	OutboundCallsEnabled bool   `json:"OutboundCallsEnabled"`
}

// PromptSummary is the full prompt record; prompts have no detail call.
type PromptSummary struct {
	Id   string `json:"Id"`
	Arn  string `json:"Arn"`
	Name string `json:"Name"`
}

type HoursSummary struct {
	Id   string `json:"Id"`
	Arn  string `json:"Arn"`
	Name string `json:"Name"`
}

type QueueSummary struct {
	Id        string `json:"Id"`
	Arn       string `json:"Arn"`
	Name      string `json:"Name"`
	QueueType string `json:"QueueType"`
}

type RoutingProfileSummary struct {
	Id   string `json:"Id"`
	Arn  string `json:"Arn"`
	Name string `json:"Name"`
}

type FlowModuleSummary struct {
	Id    string `json:"Id"`
	Arn   string `json:"Arn"`
	Name  string `json:"Name"`
	State string `json:"State,omitempty"`
}

type FlowSummary struct {
	Id    string `json:"Id"`
	Arn   string `json:"Arn"`
	Name  string `json:"Name"`
	Type  string `json:"ContactFlowType,omitempty"`
	State string `json:"ContactFlowState,omitempty"`
}

// HoursDetail is the full hours-of-operation description.
type HoursDetail struct {
	Id          string        `json:"HoursOfOperationId"`
	Arn         string        `json:"HoursOfOperationArn"`
	Name        string        `json:"Name"`
	Description string        `json:"Description,omitempty"`
	TimeZone    string        `json:"TimeZone"`
	Config      []HoursConfig `json:"Config"`
}

type HoursConfig struct {
	Day       string    `json:"Day"`
	StartTime TimeOfDay `json:"StartTime"`
	EndTime   TimeOfDay `json:"EndTime"`
}

type TimeOfDay struct {
	Hours   int32 `json:"Hours"`
	Minutes int32 `json:"Minutes"`
}

type QueueDetail struct {
	Id                   string                `json:"QueueId"`
	Arn                  string                `json:"QueueArn"`
	Name                 string                `json:"Name"`
	Description          string                `json:"Description,omitempty"`
	HoursOfOperationId   string                `json:"HoursOfOperationId,omitempty"`
	MaxContacts          int32                 `json:"MaxContacts,omitempty"`
	Status               string                `json:"Status,omitempty"`
	OutboundCallerConfig *OutboundCallerConfig `json:"OutboundCallerConfig,omitempty"`
	Tags                 map[string]string     `json:"Tags,omitempty"`
}

type OutboundCallerConfig struct {
	OutboundCallerIdName     string `json:"OutboundCallerIdName,omitempty"`
	OutboundCallerIdNumberId string `json:"OutboundCallerIdNumberId,omitempty"`
	OutboundFlowId           string `json:"OutboundFlowId,omitempty"`
}

type RoutingProfileDetail struct {
	Id                     string             `json:"RoutingProfileId"`
	Arn                    string             `json:"RoutingProfileArn"`
	Name                   string             `json:"Name"`
	Description            string             `json:"Description,omitempty"`
	DefaultOutboundQueueId string             `json:"DefaultOutboundQueueId,omitempty"`
	MediaConcurrencies     []MediaConcurrency `json:"MediaConcurrencies,omitempty"`
	Tags                   map[string]string  `json:"Tags,omitempty"`
}

type MediaConcurrency struct {
	Channel     string `json:"Channel"`
	Concurrency int32  `json:"Concurrency"`
}

// RoutingProfileQueue is one queue association of a routing profile.
type RoutingProfileQueue struct {
	QueueId   string `json:"QueueId"`
	QueueArn  string `json:"QueueArn"`
	QueueName string `json:"QueueName"`
	Channel   string `json:"Channel"`
	Priority  int32  `json:"Priority"`
	Delay     int32  `json:"Delay"`
}

// FlowModuleDetail includes the serialized flow definition in Content and the
// publication Status ("PUBLISHED" or "SAVED").
type FlowModuleDetail struct {
	Id          string            `json:"Id"`
	Arn         string            `json:"Arn"`
	Name        string            `json:"Name"`
	Description string            `json:"Description,omitempty"`
	State       string            `json:"State,omitempty"`
	Status      string            `json:"Status,omitempty"`
	Content     string            `json:"Content,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

type FlowDetail struct {
	Id          string            `json:"Id"`
	Arn         string            `json:"Arn"`
	Name        string            `json:"Name"`
	Type        string            `json:"Type,omitempty"`
	Description string            `json:"Description,omitempty"`
	State       string            `json:"State,omitempty"`
	Status      string            `json:"Status,omitempty"`
	Content     string            `json:"Content,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// Client is a narrow interface over the Amazon Connect API covering only
// what the exporter needs, so it stays mockable. Every listing call requests
// a single page bounded by limit; implementations must not follow pagination
// tokens. ListPrompts returns its page sorted by name; all other listings
// make no ordering promise.
type Client interface {
	// FindInstanceByAlias resolves an instance alias to exactly one
	// instance. A missing alias is a *NotFoundError.
	FindInstanceByAlias(ctx context.Context, alias string) (Instance, error)

	ListPrompts(ctx context.Context, instanceID string, limit int32) ([]PromptSummary, error)
	ListHoursOfOperations(ctx context.Context, instanceID string, limit int32) ([]HoursSummary, error)
	ListQueues(ctx context.Context, instanceID string, limit int32) ([]QueueSummary, error)
	ListRoutingProfiles(ctx context.Context, instanceID string, limit int32) ([]RoutingProfileSummary, error)
	ListContactFlowModules(ctx context.Context, instanceID string, limit int32) ([]FlowModuleSummary, error)
	ListContactFlows(ctx context.Context, instanceID string, limit int32) ([]FlowSummary, error)

	DescribeHoursOfOperation(ctx context.Context, instanceID, id string) (HoursDetail, error)
	DescribeQueue(ctx context.Context, instanceID, id string) (QueueDetail, error)
	DescribeRoutingProfile(ctx context.Context, instanceID, id string) (RoutingProfileDetail, error)
	ListRoutingProfileQueues(ctx context.Context, instanceID, profileID string, limit int32) ([]RoutingProfileQueue, error)
	DescribeContactFlowModule(ctx context.Context, instanceID, id string) (FlowModuleDetail, error)
	DescribeContactFlow(ctx context.Context, instanceID, id string) (FlowDetail, error)
}

// NotFoundError reports a resource or alias that does not exist.
type NotFoundError struct{ Resource, Name string }

func (e *NotFoundError) Error() string { return e.Resource + " not found: " + e.Name }
