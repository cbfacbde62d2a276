package connectapi

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/connect"
)

// RealClient wraps the official Amazon Connect client.
type RealClient struct {
	c *connect.Client
}

// Connect builds a client from the shared AWS config. An empty profile uses
// the default credential chain.
func Connect(ctx context.Context, profile string) (*RealClient, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &RealClient{c: connect.NewFromConfig(cfg)}, nil
}

func (r *RealClient) FindInstanceByAlias(ctx context.Context, alias string) (Instance, error) {
	out, err := r.c.ListInstances(ctx, &connect.ListInstancesInput{
		MaxResults: aws.Int32(ListPageCap),
	})
	if err != nil {
		return Instance{}, err
	}
	for _, s := range out.InstanceSummaryList {
		if aws.ToString(s.InstanceAlias) != alias {
			continue
		}
		return Instance{
			Id:                   aws.ToString(s.Id),
			Arn:                  aws.ToString(s.Arn),
			Alias:                alias,
			Status:               string(s.InstanceStatus),
			ServiceRole:          aws.ToString(s.ServiceRole),
			InboundCallsEnabled:  aws.ToBool(s.InboundCallsEnabled),
			OutboundCallsEnabled: aws.ToBool(s.OutboundCallsEnabled),
		}, nil
	}
	return Instance{}, &NotFoundError{Resource: "instance", Name: alias}
}

func (r *RealClient) ListPrompts(ctx context.Context, instanceID string, limit int32) ([]PromptSummary, error) {
	out, err := r.c.ListPrompts(ctx, &connect.ListPromptsInput{
		InstanceId: aws.String(instanceID),
		MaxResults: aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	prompts := make([]PromptSummary, 0, len(out.PromptSummaryList))
	for _, p := range out.PromptSummaryList {
		prompts = append(prompts, PromptSummary{
			Id:   aws.ToString(p.Id),
			Arn:  aws.ToString(p.Arn),
			Name: aws.ToString(p.Name),
		})
	}
	sort.Slice(prompts, func(i, j int) bool { return prompts[i].Name < prompts[j].Name })
	return prompts, nil
}

func (r *RealClient) ListHoursOfOperations(ctx context.Context, instanceID string, limit int32) ([]HoursSummary, error) {
	out, err := r.c.ListHoursOfOperations(ctx, &connect.ListHoursOfOperationsInput{
		InstanceId: aws.String(instanceID),
		MaxResults: aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	hours := make([]HoursSummary, 0, len(out.HoursOfOperationSummaryList))
	for _, h := range out.HoursOfOperationSummaryList {
		hours = append(hours, HoursSummary{
			Id:   aws.ToString(h.Id),
			Arn:  aws.ToString(h.Arn),
			Name: aws.ToString(h.Name),
		})
	}
	return hours, nil
}

func (r *RealClient) ListQueues(ctx context.Context, instanceID string, limit int32) ([]QueueSummary, error) {
	out, err := r.c.ListQueues(ctx, &connect.ListQueuesInput{
		InstanceId: aws.String(instanceID),
		MaxResults: aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	queues := make([]QueueSummary, 0, len(out.QueueSummaryList))
	for _, q := range out.QueueSummaryList {
		queues = append(queues, QueueSummary{
			Id:        aws.ToString(q.Id),
			Arn:       aws.ToString(q.Arn),
			Name:      aws.ToString(q.Name),
			QueueType: string(q.QueueType),
		})
	}
	return queues, nil
}

func (r *RealClient) ListRoutingProfiles(ctx context.Context, instanceID string, limit int32) ([]RoutingProfileSummary, error) {
	out, err := r.c.ListRoutingProfiles(ctx, &connect.ListRoutingProfilesInput{
		InstanceId: aws.String(instanceID),
		MaxResults: aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	profiles := make([]RoutingProfileSummary, 0, len(out.RoutingProfileSummaryList))
	for _, p := range out.RoutingProfileSummaryList {
		profiles = append(profiles, RoutingProfileSummary{
			Id:   aws.ToString(p.Id),
			Arn:  aws.ToString(p.Arn),
			Name: aws.ToString(p.Name),
		})
	}
	return profiles, nil
}

func (r *RealClient) ListContactFlowModules(ctx context.Context, instanceID string, limit int32) ([]FlowModuleSummary, error) {
	out, err := r.c.ListContactFlowModules(ctx, &connect.ListContactFlowModulesInput{
		InstanceId: aws.String(instanceID),
		MaxResults: aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	modules := make([]FlowModuleSummary, 0, len(out.ContactFlowModulesSummaryList))
	for _, m := range out.ContactFlowModulesSummaryList {
		modules = append(modules, FlowModuleSummary{
			Id:    aws.ToString(m.Id),
			Arn:   aws.ToString(m.Arn),
			Name:  aws.ToString(m.Name),
			State: string(m.State),
		})
	}
	return modules, nil
}

func (r *RealClient) ListContactFlows(ctx context.Context, instanceID string, limit int32) ([]FlowSummary, error) {
	out, err := r.c.ListContactFlows(ctx, &connect.ListContactFlowsInput{
		InstanceId: aws.String(instanceID),
		MaxResults: aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	flows := make([]FlowSummary, 0, len(out.ContactFlowSummaryList))
	for _, f := range out.ContactFlowSummaryList {
		flows = append(flows, FlowSummary{
			Id:    aws.ToString(f.Id),
			Arn:   aws.ToString(f.Arn),
			Name:  aws.ToString(f.Name),
			Type:  string(f.ContactFlowType),
			State: string(f.ContactFlowState),
		})
	}
	return flows, nil
}

func (r *RealClient) DescribeHoursOfOperation(ctx context.Context, instanceID, id string) (HoursDetail, error) {
	out, err := r.c.DescribeHoursOfOperation(ctx, &connect.DescribeHoursOfOperationInput{
		InstanceId:         aws.String(instanceID),
		HoursOfOperationId: aws.String(id),
	})
	if err != nil {
		return HoursDetail{}, err
	}
	h := out.HoursOfOperation
	d := HoursDetail{
		Id:          aws.ToString(h.HoursOfOperationId),
		Arn:         aws.ToString(h.HoursOfOperationArn),
		Name:        aws.ToString(h.Name),
		Description: aws.ToString(h.Description),
		TimeZone:    aws.ToString(h.TimeZone),
	}
	for _, c := range h.Config {
		hc := HoursConfig{Day: string(c.Day)}
		if c.StartTime != nil {
			hc.StartTime = TimeOfDay{Hours: aws.ToInt32(c.StartTime.Hours), Minutes: aws.ToInt32(c.StartTime.Minutes)}
		}
		if c.EndTime != nil {
			hc.EndTime = TimeOfDay{Hours: aws.ToInt32(c.EndTime.Hours), Minutes: aws.ToInt32(c.EndTime.Minutes)}
		}
		d.Config = append(d.Config, hc)
	}
	return d, nil
}

func (r *RealClient) DescribeQueue(ctx context.Context, instanceID, id string) (QueueDetail, error) {
	out, err := r.c.DescribeQueue(ctx, &connect.DescribeQueueInput{
		InstanceId: aws.String(instanceID),
		QueueId:    aws.String(id),
	})
	if err != nil {
		return QueueDetail{}, err
	}
	q := out.Queue
	d := QueueDetail{
		Id:                 aws.ToString(q.QueueId),
		Arn:                aws.ToString(q.QueueArn),
		Name:               aws.ToString(q.Name),
		Description:        aws.ToString(q.Description),
		HoursOfOperationId: aws.ToString(q.HoursOfOperationId),
		MaxContacts:        aws.ToInt32(q.MaxContacts),
		Status:             string(q.Status),
		Tags:               q.Tags,
	}
	if q.OutboundCallerConfig != nil {
		d.OutboundCallerConfig = &OutboundCallerConfig{
			OutboundCallerIdName:     aws.ToString(q.OutboundCallerConfig.OutboundCallerIdName),
			OutboundCallerIdNumberId: aws.ToString(q.OutboundCallerConfig.OutboundCallerIdNumberId),
			OutboundFlowId:           aws.ToString(q.OutboundCallerConfig.OutboundFlowId),
		}
	}
	return d, nil
}

func (r *RealClient) DescribeRoutingProfile(ctx context.Context, instanceID, id string) (RoutingProfileDetail, error) {
	out, err := r.c.DescribeRoutingProfile(ctx, &connect.DescribeRoutingProfileInput{
		InstanceId:       aws.String(instanceID),
		RoutingProfileId: aws.String(id),
	})
	if err != nil {
		return RoutingProfileDetail{}, err
	}
	p := out.RoutingProfile
	d := RoutingProfileDetail{
		Id:                     aws.ToString(p.RoutingProfileId),
		Arn:                    aws.ToString(p.RoutingProfileArn),
		Name:                   aws.ToString(p.Name),
		Description:            aws.ToString(p.Description),
		DefaultOutboundQueueId: aws.ToString(p.DefaultOutboundQueueId),
		Tags:                   p.Tags,
	}
	for _, m := range p.MediaConcurrencies {
		d.MediaConcurrencies = append(d.MediaConcurrencies, MediaConcurrency{
			Channel:     string(m.Channel),
			Concurrency: aws.ToInt32(m.Concurrency),
		})
	}
	return d, nil
}

func (r *RealClient) ListRoutingProfileQueues(ctx context.Context, instanceID, profileID string, limit int32) ([]RoutingProfileQueue, error) {
	out, err := r.c.ListRoutingProfileQueues(ctx, &connect.ListRoutingProfileQueuesInput{
		InstanceId:       aws.String(instanceID),
		RoutingProfileId: aws.String(profileID),
		MaxResults:       aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	queues := make([]RoutingProfileQueue, 0, len(out.RoutingProfileQueueConfigSummaryList))
	for _, q := range out.RoutingProfileQueueConfigSummaryList {
		queues = append(queues, RoutingProfileQueue{
			QueueId:   aws.ToString(q.QueueId),
			QueueArn:  aws.ToString(q.QueueArn),
			QueueName: aws.ToString(q.QueueName),
			Channel:   string(q.Channel),
			Priority:  aws.ToInt32(q.Priority),
			Delay:     q.Delay,
		})
	}
	return queues, nil
}

func (r *RealClient) DescribeContactFlowModule(ctx context.Context, instanceID, id string) (FlowModuleDetail, error) {
	out, err := r.c.DescribeContactFlowModule(ctx, &connect.DescribeContactFlowModuleInput{
		InstanceId:          aws.String(instanceID),
		ContactFlowModuleId: aws.String(id),
	})
	if err != nil {
		return FlowModuleDetail{}, err
	}
	m := out.ContactFlowModule
	return FlowModuleDetail{
		Id:          aws.ToString(m.Id),
		Arn:         aws.ToString(m.Arn),
		Name:        aws.ToString(m.Name),
		Description: aws.ToString(m.Description),
		State:       string(m.State),
		Status:      string(m.Status),
		Content:     aws.ToString(m.Content),
		Tags:        m.Tags,
	}, nil
}

func (r *RealClient) DescribeContactFlow(ctx context.Context, instanceID, id string) (FlowDetail, error) {
	out, err := r.c.DescribeContactFlow(ctx, &connect.DescribeContactFlowInput{
		InstanceId:    aws.String(instanceID),
		ContactFlowId: aws.String(id),
	})
	if err != nil {
		return FlowDetail{}, err
	}
	f := out.ContactFlow
	return FlowDetail{
		Id:          aws.ToString(f.Id),
		Arn:         aws.ToString(f.Arn),
		Name:        aws.ToString(f.Name),
		Type:        string(f.Type),
		Description: aws.ToString(f.Description),
		State:       string(f.State),
		Status:      string(f.Status),
		Content:     aws.ToString(f.Content),
		Tags:        f.Tags,
	}, nil
}
