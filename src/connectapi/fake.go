package connectapi

import (
	"context"
	"sort"
)

// FakeClient is an in-memory implementation for unit tests. Fixture data is
// keyed by instance id; injected failures by operation name or resource id.
type FakeClient struct {
	Instances []Instance

	Prompts  map[string][]PromptSummary
	Hours    map[string][]HoursSummary
	Queues   map[string][]QueueSummary
	Profiles map[string][]RoutingProfileSummary
	Modules  map[string][]FlowModuleSummary
	Flows    map[string][]FlowSummary

	HoursDetails   map[string]HoursDetail
	QueueDetails   map[string]QueueDetail
	ProfileDetails map[string]RoutingProfileDetail
	ProfileQueues  map[string][]RoutingProfileQueue
	ModuleDetails  map[string]FlowModuleDetail
	FlowDetails    map[string]FlowDetail

	// FailList aborts a listing call by operation name
	// ("ListQueues", "ListContactFlows", ...).
	FailList map[string]error
	// FailDescribe aborts a description call by resource id.
	FailDescribe map[string]error
}

func NewFake() *FakeClient {
	return &FakeClient{
		Prompts:        map[string][]PromptSummary{},
		Hours:          map[string][]HoursSummary{},
		Queues:         map[string][]QueueSummary{},
		Profiles:       map[string][]RoutingProfileSummary{},
		Modules:        map[string][]FlowModuleSummary{},
		Flows:          map[string][]FlowSummary{},
		HoursDetails:   map[string]HoursDetail{},
		QueueDetails:   map[string]QueueDetail{},
		ProfileDetails: map[string]RoutingProfileDetail{},
		ProfileQueues:  map[string][]RoutingProfileQueue{},
		ModuleDetails:  map[string]FlowModuleDetail{},
		FlowDetails:    map[string]FlowDetail{},
		FailList:       map[string]error{},
		FailDescribe:   map[string]error{},
	}
}

func (f *FakeClient) FindInstanceByAlias(_ context.Context, alias string) (Instance, error) {
	for _, inst := range f.Instances {
		if inst.Alias == alias {
			return inst, nil
		}
	}
	return Instance{}, &NotFoundError{Resource: "instance", Name: alias}
}

func (f *FakeClient) ListPrompts(_ context.Context, instanceID string, limit int32) ([]PromptSummary, error) {
	if err := f.FailList["ListPrompts"]; err != nil {
		return nil, err
	}
	out := append([]PromptSummary(nil), f.Prompts[instanceID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return capPage(out, limit), nil
}

func (f *FakeClient) ListHoursOfOperations(_ context.Context, instanceID string, limit int32) ([]HoursSummary, error) {
	if err := f.FailList["ListHoursOfOperations"]; err != nil {
		return nil, err
	}
	return capPage(append([]HoursSummary(nil), f.Hours[instanceID]...), limit), nil
}

func (f *FakeClient) ListQueues(_ context.Context, instanceID string, limit int32) ([]QueueSummary, error) {
	if err := f.FailList["ListQueues"]; err != nil {
		return nil, err
	}
	return capPage(append([]QueueSummary(nil), f.Queues[instanceID]...), limit), nil
}

func (f *FakeClient) ListRoutingProfiles(_ context.Context, instanceID string, limit int32) ([]RoutingProfileSummary, error) {
	if err := f.FailList["ListRoutingProfiles"]; err != nil {
		return nil, err
	}
	return capPage(append([]RoutingProfileSummary(nil), f.Profiles[instanceID]...), limit), nil
}

func (f *FakeClient) ListContactFlowModules(_ context.Context, instanceID string, limit int32) ([]FlowModuleSummary, error) {
	if err := f.FailList["ListContactFlowModules"]; err != nil {
		return nil, err
	}
	return capPage(append([]FlowModuleSummary(nil), f.Modules[instanceID]...), limit), nil
}

func (f *FakeClient) ListContactFlows(_ context.Context, instanceID string, limit int32) ([]FlowSummary, error) {
	if err := f.FailList["ListContactFlows"]; err != nil {
		return nil, err
	}
	return capPage(append([]FlowSummary(nil), f.Flows[instanceID]...), limit), nil
}

func (f *FakeClient) DescribeHoursOfOperation(_ context.Context, _, id string) (HoursDetail, error) {
	if err := f.FailDescribe[id]; err != nil {
		return HoursDetail{}, err
	}
	d, ok := f.HoursDetails[id]
	if !ok {
		return HoursDetail{}, &NotFoundError{Resource: "hours of operation", Name: id}
	}
	return d, nil
}

func (f *FakeClient) DescribeQueue(_ context.Context, _, id string) (QueueDetail, error) {
	if err := f.FailDescribe[id]; err != nil {
		return QueueDetail{}, err
	}
	d, ok := f.QueueDetails[id]
	if !ok {
		return QueueDetail{}, &NotFoundError{Resource: "queue", Name: id}
	}
	return d, nil
}

func (f *FakeClient) DescribeRoutingProfile(_ context.Context, _, id string) (RoutingProfileDetail, error) {
	if err := f.FailDescribe[id]; err != nil {
		return RoutingProfileDetail{}, err
	}
	d, ok := f.ProfileDetails[id]
	if !ok {
		return RoutingProfileDetail{}, &NotFoundError{Resource: "routing profile", Name: id}
	}
	return d, nil
}

func (f *FakeClient) ListRoutingProfileQueues(_ context.Context, _, profileID string, limit int32) ([]RoutingProfileQueue, error) {
	if err := f.FailDescribe[profileID]; err != nil {
		return nil, err
	}
	return capPage(append([]RoutingProfileQueue(nil), f.ProfileQueues[profileID]...), limit), nil
}

func (f *FakeClient) DescribeContactFlowModule(_ context.Context, _, id string) (FlowModuleDetail, error) {
	if err := f.FailDescribe[id]; err != nil {
		return FlowModuleDetail{}, err
	}
	d, ok := f.ModuleDetails[id]
	if !ok {
		return FlowModuleDetail{}, &NotFoundError{Resource: "contact flow module", Name: id}
	}
	return d, nil
}

func (f *FakeClient) DescribeContactFlow(_ context.Context, _, id string) (FlowDetail, error) {
	if err := f.FailDescribe[id]; err != nil {
		return FlowDetail{}, err
	}
	d, ok := f.FlowDetails[id]
	if !ok {
		return FlowDetail{}, &NotFoundError{Resource: "contact flow", Name: id}
	}
	return d, nil
}

func capPage[S ~[]E, E any](s S, limit int32) S {
	if limit > 0 && int32(len(s)) > limit {
		return s[:limit]
	}
	return s
}
