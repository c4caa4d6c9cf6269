package cosmosrest

import "encoding/json"

// Fields typed as json.RawMessage carry protobuf Any values whose concrete
// shape depends on the chain (accounts, pubkeys, tx bodies, proposal content).

type (
	Pagination struct {
		NextKey string `json:"next_key"`
		Total   string `json:"total"`
	}

	Coin struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	}

	// DecCoin has the same wire shape as Coin but a decimal amount.
	DecCoin = Coin

	Height struct {
		RevisionNumber string `json:"revision_number"`
		RevisionHeight string `json:"revision_height"`
	}
)

// Auth.
type (
	AuthAccountsResponse struct {
		Accounts   []json.RawMessage `json:"accounts"`
		Pagination Pagination        `json:"pagination"`
	}

	AuthAccountResponse struct {
		Account json.RawMessage `json:"account"`
	}
)

// Bank.
type (
	SendEnabled struct {
		Denom   string `json:"denom"`
		Enabled bool   `json:"enabled"`
	}

	BankParamsResponse struct {
		Params struct {
			SendEnabled        []SendEnabled `json:"send_enabled"`
			DefaultSendEnabled bool          `json:"default_send_enabled"`
		} `json:"params"`
	}

	BankBalancesResponse struct {
		Balances   []Coin     `json:"balances"`
		Pagination Pagination `json:"pagination"`
	}

	DenomUnit struct {
		Denom    string   `json:"denom"`
		Exponent uint32   `json:"exponent"`
		Aliases  []string `json:"aliases"`
	}

	DenomMetadata struct {
		Description string      `json:"description"`
		DenomUnits  []DenomUnit `json:"denom_units"`
		Base        string      `json:"base"`
		Display     string      `json:"display"`
		Name        string      `json:"name"`
		Symbol      string      `json:"symbol"`
	}

	BankDenomsMetadataResponse struct {
		Metadatas  []DenomMetadata `json:"metadatas"`
		Pagination Pagination      `json:"pagination"`
	}

	BankSupplyResponse struct {
		Supply     []Coin     `json:"supply"`
		Pagination Pagination `json:"pagination"`
	}

	BankSupplyOfResponse struct {
		Amount Coin `json:"amount"`
	}
)

// Distribution.
type (
	DistributionParamsResponse struct {
		Params struct {
			CommunityTax        string `json:"community_tax"`
			BaseProposerReward  string `json:"base_proposer_reward"`
			BonusProposerReward string `json:"bonus_proposer_reward"`
			WithdrawAddrEnabled bool   `json:"withdraw_addr_enabled"`
		} `json:"params"`
	}

	DistributionCommunityPoolResponse struct {
		Pool []DecCoin `json:"pool"`
	}

	DelegationDelegatorReward struct {
		ValidatorAddress string    `json:"validator_address"`
		Reward           []DecCoin `json:"reward"`
	}

	DistributionDelegatorRewardsResponse struct {
		Rewards []DelegationDelegatorReward `json:"rewards"`
		Total   []DecCoin                   `json:"total"`
	}

	DistributionValidatorCommissionResponse struct {
		Commission struct {
			Commission []DecCoin `json:"commission"`
		} `json:"commission"`
	}

	DistributionValidatorOutstandingRewardsResponse struct {
		Rewards struct {
			Rewards []DecCoin `json:"rewards"`
		} `json:"rewards"`
	}

	ValidatorSlashEvent struct {
		ValidatorPeriod string `json:"validator_period"`
		Fraction        string `json:"fraction"`
	}

	DistributionValidatorSlashesResponse struct {
		Slashes    []ValidatorSlashEvent `json:"slashes"`
		Pagination Pagination            `json:"pagination"`
	}
)

// Slashing.
type (
	SlashingParamsResponse struct {
		Params struct {
			SignedBlocksWindow      string `json:"signed_blocks_window"`
			MinSignedPerWindow      string `json:"min_signed_per_window"`
			DowntimeJailDuration    string `json:"downtime_jail_duration"`
			SlashFractionDoubleSign string `json:"slash_fraction_double_sign"`
			SlashFractionDowntime   string `json:"slash_fraction_downtime"`
		} `json:"params"`
	}

	ValidatorSigningInfo struct {
		Address             string `json:"address"`
		StartHeight         string `json:"start_height"`
		IndexOffset         string `json:"index_offset"`
		JailedUntil         string `json:"jailed_until"`
		Tombstoned          bool   `json:"tombstoned"`
		MissedBlocksCounter string `json:"missed_blocks_counter"`
	}

	SlashingSigningInfosResponse struct {
		Info       []ValidatorSigningInfo `json:"info"`
		Pagination Pagination             `json:"pagination"`
	}
)

// Gov.
type (
	// GovParamsResponse is shared by the voting, deposit and tallying params
	// queries; only the requested section is populated.
	GovParamsResponse struct {
		VotingParams struct {
			VotingPeriod string `json:"voting_period"`
		} `json:"voting_params"`
		DepositParams struct {
			MinDeposit       []Coin `json:"min_deposit"`
			MaxDepositPeriod string `json:"max_deposit_period"`
		} `json:"deposit_params"`
		TallyParams struct {
			Quorum        string `json:"quorum"`
			Threshold     string `json:"threshold"`
			VetoThreshold string `json:"veto_threshold"`
		} `json:"tally_params"`
	}

	TallyResult struct {
		Yes        string `json:"yes"`
		Abstain    string `json:"abstain"`
		No         string `json:"no"`
		NoWithVeto string `json:"no_with_veto"`
	}

	Proposal struct {
		ProposalID       string          `json:"proposal_id"`
		Content          json.RawMessage `json:"content"`
		Status           string          `json:"status"`
		FinalTallyResult TallyResult     `json:"final_tally_result"`
		SubmitTime       string          `json:"submit_time"`
		DepositEndTime   string          `json:"deposit_end_time"`
		TotalDeposit     []Coin          `json:"total_deposit"`
		VotingStartTime  string          `json:"voting_start_time"`
		VotingEndTime    string          `json:"voting_end_time"`
	}

	GovProposalsResponse struct {
		Proposals  []Proposal `json:"proposals"`
		Pagination Pagination `json:"pagination"`
	}

	GovProposalResponse struct {
		Proposal Proposal `json:"proposal"`
	}

	Deposit struct {
		ProposalID string `json:"proposal_id"`
		Depositor  string `json:"depositor"`
		Amount     []Coin `json:"amount"`
	}

	GovDepositsResponse struct {
		Deposits   []Deposit  `json:"deposits"`
		Pagination Pagination `json:"pagination"`
	}

	GovTallyResponse struct {
		Tally TallyResult `json:"tally"`
	}

	WeightedVoteOption struct {
		Option string `json:"option"`
		Weight string `json:"weight"`
	}

	Vote struct {
		ProposalID string               `json:"proposal_id"`
		Voter      string               `json:"voter"`
		Option     string               `json:"option"`
		Options    []WeightedVoteOption `json:"options"`
	}

	GovVotesResponse struct {
		Votes      []Vote     `json:"votes"`
		Pagination Pagination `json:"pagination"`
	}

	GovVoteResponse struct {
		Vote Vote `json:"vote"`
	}
)

// Staking.
type (
	Delegation struct {
		DelegatorAddress string `json:"delegator_address"`
		ValidatorAddress string `json:"validator_address"`
		Shares           string `json:"shares"`
	}

	DelegationResponse struct {
		Delegation Delegation `json:"delegation"`
		Balance    Coin       `json:"balance"`
	}

	StakingDelegationsResponse struct {
		DelegationResponses []DelegationResponse `json:"delegation_responses"`
		Pagination          Pagination           `json:"pagination"`
	}

	StakingDelegationResponse struct {
		DelegationResponse DelegationResponse `json:"delegation_response"`
	}

	RedelegationEntry struct {
		CreationHeight string `json:"creation_height"`
		CompletionTime string `json:"completion_time"`
		InitialBalance string `json:"initial_balance"`
		SharesDst      string `json:"shares_dst"`
	}

	RedelegationResponse struct {
		Redelegation struct {
			DelegatorAddress    string              `json:"delegator_address"`
			ValidatorSrcAddress string              `json:"validator_src_address"`
			ValidatorDstAddress string              `json:"validator_dst_address"`
			Entries             []RedelegationEntry `json:"entries"`
		} `json:"redelegation"`
		Entries []struct {
			RedelegationEntry RedelegationEntry `json:"redelegation_entry"`
			Balance           string            `json:"balance"`
		} `json:"entries"`
	}

	StakingRedelegationsResponse struct {
		RedelegationResponses []RedelegationResponse `json:"redelegation_responses"`
		Pagination            Pagination             `json:"pagination"`
	}

	UnbondingDelegationEntry struct {
		CreationHeight string `json:"creation_height"`
		CompletionTime string `json:"completion_time"`
		InitialBalance string `json:"initial_balance"`
		Balance        string `json:"balance"`
	}

	UnbondingDelegation struct {
		DelegatorAddress string                     `json:"delegator_address"`
		ValidatorAddress string                     `json:"validator_address"`
		Entries          []UnbondingDelegationEntry `json:"entries"`
	}

	StakingUnbondingDelegationsResponse struct {
		UnbondingResponses []UnbondingDelegation `json:"unbonding_responses"`
		Pagination         Pagination            `json:"pagination"`
	}

	StakingUnbondingDelegationResponse struct {
		Unbond UnbondingDelegation `json:"unbond"`
	}

	Validator struct {
		OperatorAddress string          `json:"operator_address"`
		ConsensusPubkey json.RawMessage `json:"consensus_pubkey"`
		Jailed          bool            `json:"jailed"`
		Status          string          `json:"status"`
		Tokens          string          `json:"tokens"`
		DelegatorShares string          `json:"delegator_shares"`
		Description     struct {
			Moniker         string `json:"moniker"`
			Identity        string `json:"identity"`
			Website         string `json:"website"`
			SecurityContact string `json:"security_contact"`
			Details         string `json:"details"`
		} `json:"description"`
		UnbondingHeight string `json:"unbonding_height"`
		UnbondingTime   string `json:"unbonding_time"`
		Commission      struct {
			CommissionRates struct {
				Rate          string `json:"rate"`
				MaxRate       string `json:"max_rate"`
				MaxChangeRate string `json:"max_change_rate"`
			} `json:"commission_rates"`
			UpdateTime string `json:"update_time"`
		} `json:"commission"`
		MinSelfDelegation string `json:"min_self_delegation"`
	}

	StakingValidatorsResponse struct {
		Validators []Validator `json:"validators"`
		Pagination Pagination  `json:"pagination"`
	}

	StakingValidatorResponse struct {
		Validator Validator `json:"validator"`
	}

	StakingParamsResponse struct {
		Params struct {
			UnbondingTime     string `json:"unbonding_time"`
			MaxValidators     uint32 `json:"max_validators"`
			MaxEntries        uint32 `json:"max_entries"`
			HistoricalEntries uint32 `json:"historical_entries"`
			BondDenom         string `json:"bond_denom"`
		} `json:"params"`
	}

	StakingPoolResponse struct {
		Pool struct {
			NotBondedTokens string `json:"not_bonded_tokens"`
			BondedTokens    string `json:"bonded_tokens"`
		} `json:"pool"`
	}
)

// Tendermint base.
type (
	AbciQueryResponse struct {
		Code      uint32          `json:"code"`
		Log       string          `json:"log"`
		Info      string          `json:"info"`
		Index     string          `json:"index"`
		Key       string          `json:"key"`
		Value     string          `json:"value"`
		ProofOps  json.RawMessage `json:"proof_ops"`
		Height    string          `json:"height"`
		Codespace string          `json:"codespace"`
	}

	BlockHeader struct {
		Version struct {
			Block string `json:"block"`
			App   string `json:"app"`
		} `json:"version"`
		ChainID            string          `json:"chain_id"`
		Height             string          `json:"height"`
		Time               string          `json:"time"`
		LastBlockID        json.RawMessage `json:"last_block_id"`
		LastCommitHash     string          `json:"last_commit_hash"`
		DataHash           string          `json:"data_hash"`
		ValidatorsHash     string          `json:"validators_hash"`
		NextValidatorsHash string          `json:"next_validators_hash"`
		ConsensusHash      string          `json:"consensus_hash"`
		AppHash            string          `json:"app_hash"`
		LastResultsHash    string          `json:"last_results_hash"`
		EvidenceHash       string          `json:"evidence_hash"`
		ProposerAddress    string          `json:"proposer_address"`
	}

	Block struct {
		Header BlockHeader `json:"header"`
		Data   struct {
			Txs []string `json:"txs"`
		} `json:"data"`
		Evidence   json.RawMessage `json:"evidence"`
		LastCommit json.RawMessage `json:"last_commit"`
	}

	BlockResponse struct {
		BlockID  json.RawMessage `json:"block_id"`
		Block    Block           `json:"block"`
		SdkBlock json.RawMessage `json:"sdk_block"`
	}

	NodeInfoResponse struct {
		DefaultNodeInfo struct {
			ProtocolVersion json.RawMessage `json:"protocol_version"`
			DefaultNodeID   string          `json:"default_node_id"`
			ListenAddr      string          `json:"listen_addr"`
			Network         string          `json:"network"`
			Version         string          `json:"version"`
			Channels        string          `json:"channels"`
			Moniker         string          `json:"moniker"`
			Other           struct {
				TxIndex    string `json:"tx_index"`
				RPCAddress string `json:"rpc_address"`
			} `json:"other"`
		} `json:"default_node_info"`
		ApplicationVersion struct {
			Name             string          `json:"name"`
			AppName          string          `json:"app_name"`
			Version          string          `json:"version"`
			GitCommit        string          `json:"git_commit"`
			BuildTags        string          `json:"build_tags"`
			GoVersion        string          `json:"go_version"`
			BuildDeps        json.RawMessage `json:"build_deps"`
			CosmosSdkVersion string          `json:"cosmos_sdk_version"`
		} `json:"application_version"`
	}

	TendermintValidator struct {
		Address          string          `json:"address"`
		PubKey           json.RawMessage `json:"pub_key"`
		VotingPower      string          `json:"voting_power"`
		ProposerPriority string          `json:"proposer_priority"`
	}

	ValidatorSetResponse struct {
		BlockHeight string                `json:"block_height"`
		Validators  []TendermintValidator `json:"validators"`
		Pagination  Pagination            `json:"pagination"`
	}
)

// Tx.
type (
	TxResult struct {
		Height    string          `json:"height"`
		TxHash    string          `json:"txhash"`
		Codespace string          `json:"codespace"`
		Code      uint32          `json:"code"`
		Data      string          `json:"data"`
		RawLog    string          `json:"raw_log"`
		Logs      json.RawMessage `json:"logs"`
		Info      string          `json:"info"`
		GasWanted string          `json:"gas_wanted"`
		GasUsed   string          `json:"gas_used"`
		Tx        json.RawMessage `json:"tx"`
		Timestamp string          `json:"timestamp"`
		Events    json.RawMessage `json:"events"`
	}

	TxsEventResponse struct {
		Txs         []json.RawMessage `json:"txs"`
		TxResponses []TxResult        `json:"tx_responses"`
		Pagination  Pagination        `json:"pagination"`
		Total       string            `json:"total"`
	}

	BlockWithTxsResponse struct {
		Txs        []json.RawMessage `json:"txs"`
		BlockID    json.RawMessage   `json:"block_id"`
		Block      Block             `json:"block"`
		Pagination Pagination        `json:"pagination"`
	}

	TxResponse struct {
		Tx         json.RawMessage `json:"tx"`
		TxResponse TxResult        `json:"tx_response"`
	}
)

// Mint.
type (
	MintParamsResponse struct {
		Params struct {
			MintDenom           string `json:"mint_denom"`
			InflationRateChange string `json:"inflation_rate_change"`
			InflationMax        string `json:"inflation_max"`
			InflationMin        string `json:"inflation_min"`
			GoalBonded          string `json:"goal_bonded"`
			BlocksPerYear       string `json:"blocks_per_year"`
		} `json:"params"`
	}

	MintInflationResponse struct {
		Inflation string `json:"inflation"`
	}

	MintAnnualProvisionsResponse struct {
		AnnualProvisions string `json:"annual_provisions"`
	}
)

// IBC.
type (
	DenomTraceResponse struct {
		DenomTrace struct {
			Path      string `json:"path"`
			BaseDenom string `json:"base_denom"`
		} `json:"denom_trace"`
	}

	ConnectionVersion struct {
		Identifier string   `json:"identifier"`
		Features   []string `json:"features"`
	}

	Connection struct {
		ID           string              `json:"id,omitempty"`
		ClientID     string              `json:"client_id"`
		Versions     []ConnectionVersion `json:"versions"`
		State        string              `json:"state"`
		Counterparty struct {
			ClientID     string `json:"client_id"`
			ConnectionID string `json:"connection_id"`
			Prefix       struct {
				KeyPrefix string `json:"key_prefix"`
			} `json:"prefix"`
		} `json:"counterparty"`
		DelayPeriod string `json:"delay_period"`
	}

	IBCConnectionsResponse struct {
		Connections []Connection `json:"connections"`
		Pagination  Pagination   `json:"pagination"`
		Height      Height       `json:"height"`
	}

	IBCConnectionResponse struct {
		Connection  Connection `json:"connection"`
		Proof       string     `json:"proof"`
		ProofHeight Height     `json:"proof_height"`
	}

	IBCClientStateResponse struct {
		IdentifiedClientState struct {
			ClientID    string          `json:"client_id"`
			ClientState json.RawMessage `json:"client_state"`
		} `json:"identified_client_state"`
		Proof       string `json:"proof"`
		ProofHeight Height `json:"proof_height"`
	}

	Channel struct {
		State        string `json:"state"`
		Ordering     string `json:"ordering"`
		Counterparty struct {
			PortID    string `json:"port_id"`
			ChannelID string `json:"channel_id"`
		} `json:"counterparty"`
		ConnectionHops []string `json:"connection_hops"`
		Version        string   `json:"version"`
		PortID         string   `json:"port_id"`
		ChannelID      string   `json:"channel_id"`
	}

	IBCChannelsResponse struct {
		Channels   []Channel  `json:"channels"`
		Pagination Pagination `json:"pagination"`
		Height     Height     `json:"height"`
	}

	PacketState struct {
		PortID    string `json:"port_id"`
		ChannelID string `json:"channel_id"`
		Sequence  string `json:"sequence"`
		Data      string `json:"data"`
	}

	IBCPacketAcknowledgementsResponse struct {
		Acknowledgements []PacketState `json:"acknowledgements"`
		Pagination       Pagination    `json:"pagination"`
		Height           Height        `json:"height"`
	}

	IBCNextSequenceResponse struct {
		NextSequenceReceive string `json:"next_sequence_receive"`
		Proof               string `json:"proof"`
		ProofHeight         Height `json:"proof_height"`
	}
)
